package masterdata

import (
	"strings"
	"time"

	"jewelpos/config"
	"jewelpos/controllers/idgen"
	"jewelpos/models"

	"github.com/shopspring/decimal"
)

// Customer master -------------------------------------------------------------

func (d *Directory) ListCustomers() []models.Customer {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Customer, len(d.customers))
	copy(out, d.customers)
	return out
}

func (d *Directory) GetActiveCustomer(id string) (models.Customer, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, c := range d.customers {
		if c.ID == id && c.IsActive {
			return c, true
		}
	}
	return models.Customer{}, false
}

func (d *Directory) CreateCustomer(c models.Customer) models.Customer {
	c.ID = idgen.NewID("c")
	c.IsActive = true
	c.CreatedAt = time.Now()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.customers = append(d.customers, c)
	return c
}

func (d *Directory) UpdateCustomer(c models.Customer) (models.Customer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.customers {
		if d.customers[i].ID == c.ID {
			c.CreatedAt = d.customers[i].CreatedAt
			d.customers[i] = c
			return c, nil
		}
	}
	return models.Customer{}, ErrRecordMissing
}

// CustomerNameExists reports whether a customer with this name already exists,
// used by the Excel bulk import to skip duplicates.
func (d *Directory) CustomerNameExists(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, c := range d.customers {
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

// Employee master -------------------------------------------------------------

func (d *Directory) ListEmployees() []models.Employee {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Employee, len(d.employees))
	copy(out, d.employees)
	return out
}

func (d *Directory) CreateEmployee(e models.Employee) models.Employee {
	e.ID = idgen.NewID("e")
	e.IsActive = true
	e.CreatedAt = time.Now()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.employees = append(d.employees, e)
	return e
}

func (d *Directory) UpdateEmployee(e models.Employee) (models.Employee, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.employees {
		if d.employees[i].ID == e.ID {
			e.CreatedAt = d.employees[i].CreatedAt
			d.employees[i] = e
			return e, nil
		}
	}
	return models.Employee{}, ErrRecordMissing
}

// Company master --------------------------------------------------------------

func (d *Directory) ListCompanies() []models.Company {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Company, len(d.companies))
	copy(out, d.companies)
	return out
}

func (d *Directory) CreateCompany(c models.Company) models.Company {
	c.ID = idgen.NewID("co")
	c.IsActive = true
	c.CreatedAt = time.Now()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.companies = append(d.companies, c)
	return c
}

func (d *Directory) UpdateCompany(c models.Company) (models.Company, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.companies {
		if d.companies[i].ID == c.ID {
			c.CreatedAt = d.companies[i].CreatedAt
			d.companies[i] = c
			return c, nil
		}
	}
	return models.Company{}, ErrRecordMissing
}

// VAT master ------------------------------------------------------------------

func (d *Directory) ListVatRates() []models.VatRate {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.VatRate, len(d.vatRates))
	copy(out, d.vatRates)
	return out
}

func (d *Directory) CreateVatRate(v models.VatRate) models.VatRate {
	v.ID = idgen.NewID("vat")
	v.IsActive = true
	v.CreatedAt = time.Now()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.vatRates = append(d.vatRates, v)
	return v
}

func (d *Directory) UpdateVatRate(v models.VatRate) (models.VatRate, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.vatRates {
		if d.vatRates[i].ID == v.ID {
			v.CreatedAt = d.vatRates[i].CreatedAt
			d.vatRates[i] = v
			return v, nil
		}
	}
	return models.VatRate{}, ErrRecordMissing
}

// ActiveVatRate returns the percent rate of the most recently effective active
// VAT record, falling back to the configured default when the master is empty.
func (d *Directory) ActiveVatRate() decimal.Decimal {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var best *models.VatRate
	for i := range d.vatRates {
		v := &d.vatRates[i]
		if !v.IsActive {
			continue
		}
		if best == nil || v.EffectiveDate.After(best.EffectiveDate) {
			best = v
		}
	}
	if best == nil {
		return config.DefaultVatRate
	}
	return best.Rate
}
