package masterdata

import (
	"os"
	"testing"

	"jewelpos/controllers/idgen"
)

func TestMain(m *testing.M) {
	idgen.Init()
	os.Exit(m.Run())
}
