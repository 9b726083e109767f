package config

import (
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "STORE_DRIVER", "DATA_DIR", "STORE_STRICT_LOAD", "SEED_CATALOG", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.HTTPAddr != ":5000" || c.StoreDriver != "file" || c.DataDir != "data" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.StrictLoad || !c.SeedCatalog {
		t.Fatalf("strict=%v seed=%v", c.StrictLoad, c.SeedCatalog)
	}
	if !reflect.DeepEqual(c.CORSOrigins, []string{"*"}) {
		t.Fatalf("origins=%v", c.CORSOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "bolt")
	t.Setenv("STORE_STRICT_LOAD", "true")
	t.Setenv("SEED_CATALOG", "0")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	c := Load()
	if c.StoreDriver != "bolt" || !c.StrictLoad || c.SeedCatalog {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if !reflect.DeepEqual(c.CORSOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Fatalf("origins=%v", c.CORSOrigins)
	}
}

func TestLoad_BadBoolFallsBack(t *testing.T) {
	t.Setenv("SEED_CATALOG", "maybe")
	if !Load().SeedCatalog {
		t.Fatal("unparseable bool should keep the default")
	}
}

func TestNewLogger_FileTee(t *testing.T) {
	prev := zap.L()
	defer zap.ReplaceGlobals(prev)

	c := Config{LogMode: "production", LogFile: filepath.Join(t.TempDir(), "shop.log")}
	logger, err := NewLogger(c)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if zap.L() != logger {
		t.Fatal("logger not installed globally")
	}
	logger.Info("hello")
	_ = logger.Sync()
}
