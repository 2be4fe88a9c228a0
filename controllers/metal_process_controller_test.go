package controllers

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"jewelpos/masterdata"

	"github.com/gofiber/fiber/v2"
)

func metalProcessApp(t *testing.T) (*fiber.App, *masterdata.Directory) {
	t.Helper()
	dir := masterdata.NewDirectory()
	masterdata.RunSeeders(dir)

	app := fiber.New()
	controller := NewMetalProcessController(dir)
	app.Put("/metal-processes/:id", controller.Update)
	return app, dir
}

func putJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("PUT", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp.StatusCode
}

func TestMetalProcessUpdateWithoutTypesKeepsAdjacency(t *testing.T) {
	app, dir := metalProcessApp(t)

	if code := putJSON(t, app, "/metal-processes/mp1", `{"name":"Polishing & Finishing"}`); code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}

	mp, ok := dir.GetActiveMetalProcess("mp1")
	if !ok {
		t.Fatalf("metal process mp1 missing")
	}
	if mp.Name != "Polishing & Finishing" {
		t.Fatalf("expected renamed record, got %q", mp.Name)
	}
	if got := mp.Types.TypesFor("Hand Polish"); len(got) != 2 {
		t.Fatalf("rename without types must keep the adjacency map, got %v", got)
	}
}

func TestMetalProcessUpdateReplacesTypes(t *testing.T) {
	app, dir := metalProcessApp(t)

	body := `{"name":"Polishing","types":[{"process":"Hand Polish","types":["Mirror"]}]}`
	if code := putJSON(t, app, "/metal-processes/mp1", body); code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}

	mp, _ := dir.GetActiveMetalProcess("mp1")
	if got := mp.Types.TypesFor("Hand Polish"); len(got) != 1 || got[0] != "Mirror" {
		t.Fatalf("expected replaced adjacency, got %v", got)
	}
	if got := mp.Types.ProcessNames(); len(got) != 1 {
		t.Fatalf("expected only the submitted process, got %v", got)
	}
}

func TestMetalProcessUpdateEmptyTypesClears(t *testing.T) {
	app, dir := metalProcessApp(t)

	if code := putJSON(t, app, "/metal-processes/mp1", `{"name":"Polishing","types":[]}`); code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}

	mp, _ := dir.GetActiveMetalProcess("mp1")
	if mp.Types.Len() != 0 {
		t.Fatalf("explicit empty types must clear the adjacency map, got %v", mp.Types.ProcessNames())
	}
}
