package masterdata

import (
	"time"

	"jewelpos/models"

	"github.com/shopspring/decimal"
)

// RunSeeders memuat data master awal ke directory.
func RunSeeders(d *Directory) {
	SeedProcessTypes(d)
	SeedProcesses(d)
	SeedMetalProcesses(d)
	SeedMetals(d)
	SeedItems(d)
	SeedCustomers(d)
	SeedEmployees(d)
	SeedCompany(d)
	SeedVatRates(d)
}

func seedRecord(id, name string, refIDs ...string) models.MasterRecord {
	return models.MasterRecord{
		ID:        id,
		Name:      name,
		IsActive:  true,
		CreatedAt: time.Now(),
		RefIDs:    refIDs,
	}
}

func SeedProcessTypes(d *Directory) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.processTypes) > 0 {
		return
	}
	names := [][2]string{
		{"pt1", "Light"}, {"pt2", "Heavy"}, {"pt3", "Quick"}, {"pt4", "Deep"},
		{"pt5", "4-Prong"}, {"pt6", "6-Prong"}, {"pt7", "Full"}, {"pt8", "Half"},
		{"pt9", "in block"}, {"pt10", "in script"}, {"pt11", "Deep Cut"}, {"pt12", "Shallow"},
		{"pt13", "Resin"}, {"pt14", "Wax"}, {"pt15", "CNC"},
	}
	for _, n := range names {
		d.processTypes = append(d.processTypes, seedRecord(n[0], n[1]))
	}
}

func SeedProcesses(d *Directory) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.processes) > 0 {
		return
	}
	d.processes = append(d.processes,
		seedRecord("p1", "Hand Polish", "pt1", "pt2"),
		seedRecord("p2", "Machine Polish", "pt3", "pt4"),
		seedRecord("p3", "Prong", "pt5", "pt6"),
		seedRecord("p4", "Bezel", "pt7", "pt8"),
		seedRecord("p5", "Laser", "pt9", "pt10"),
		seedRecord("p6", "Hand", "pt11", "pt12"),
		seedRecord("p7", "3D Print", "pt13", "pt14"),
		seedRecord("p8", "Milling", "pt15"),
	)
}

func SeedMetalProcesses(d *Directory) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.metalProcesses) > 0 {
		return
	}

	polishing := models.NewProcessTypeMap()
	polishing.Add("Hand Polish", "Light", "Heavy")
	polishing.Add("Machine Polish", "Quick", "Deep")

	mounting := models.NewProcessTypeMap()
	mounting.Add("Prong", "4-Prong", "6-Prong")
	mounting.Add("Bezel", "Full", "Half")

	engraving := models.NewProcessTypeMap()
	engraving.Add("Laser", "in block", "in script")
	engraving.Add("Hand", "Deep Cut", "Shallow")

	cadcam := models.NewProcessTypeMap()
	cadcam.Add("3D Print", "Resin", "Wax")
	cadcam.Add("Milling", "CNC")

	d.metalProcesses = append(d.metalProcesses,
		models.MetalProcess{MasterRecord: seedRecord("mp1", "Polishing"), Types: polishing},
		models.MetalProcess{MasterRecord: seedRecord("mp2", "Mounting"), Types: mounting},
		models.MetalProcess{MasterRecord: seedRecord("mp3", "Engraving"), Types: engraving},
		models.MetalProcess{MasterRecord: seedRecord("mp4", "CAD/CAM"), Types: cadcam},
	)
}

func SeedMetals(d *Directory) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.metals) > 0 {
		return
	}
	d.metals = append(d.metals,
		seedRecord("m1", "Platinum", "mp1", "mp2"),
		seedRecord("m2", "Gold 18K", "mp1", "mp3"),
		seedRecord("m3", "Silver 925", "mp3", "mp4"),
	)
}

func SeedItems(d *Directory) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.items) > 0 {
		return
	}
	d.items = append(d.items,
		seedRecord("i1", "Ring", "m1", "m2"),
		seedRecord("i2", "Pendant", "m3"),
		seedRecord("i3", "Earring", "m1"),
		seedRecord("i4", "Bangle", "m2"),
	)
}

func SeedCustomers(d *Directory) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.customers) > 0 {
		return
	}
	d.customers = append(d.customers,
		models.Customer{
			ID: "c1", Type: models.CustomerRegistered, Name: "Ameen Jewellers",
			Company: "Ameen & Sons", Contact: "0777123456", Email: "info@ameen.lk",
			VatID: "VAT12345", SendInvoiceByEmail: true, IsActive: true, CreatedAt: time.Now(),
		},
		models.Customer{
			ID: "c2", Type: models.CustomerInvoice, Name: "Golden Touch",
			Company: "Golden Touch Pvt Ltd", Contact: "0717896543", Email: "golden@touch.lk",
			VatID: "VAT98765", IsActive: true, CreatedAt: time.Now(),
		},
	)
}

func SeedEmployees(d *Directory) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.employees) > 0 {
		return
	}
	d.employees = append(d.employees,
		models.Employee{ID: "e1", Name: "John Doe", EmployeeID: "E1001", Role: "Polisher", IsActive: true, CreatedAt: time.Now()},
		models.Employee{ID: "e2", Name: "Jane Smith", EmployeeID: "E1002", Role: "Stone Setter", IsActive: true, CreatedAt: time.Now()},
	)
}

func SeedCompany(d *Directory) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.companies) > 0 {
		return
	}
	d.companies = append(d.companies, models.Company{
		ID: "co1", Name: "GEMINI JEWELRY SERVICES", Tagline: "The Finest Workmanship",
		Address: "123 High Street, London, UK", IsActive: true, CreatedAt: time.Now(),
	})
}

func SeedVatRates(d *Directory) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.vatRates) > 0 {
		return
	}
	d.vatRates = append(d.vatRates, models.VatRate{
		ID: "vat1", Rate: decimal.NewFromInt(20),
		EffectiveDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		AddedBy:       "system", IsActive: true, CreatedAt: time.Now(),
	})
}
