package config

import (
	"os"
	"reflect"
	"strings"
	"testing"
	"time"
)

var envKeys = []string{
	"PORT", "READ_TIMEOUT", "READ_HEADER_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT",
	"SHUTDOWN_TIMEOUT", "MAX_HEADER_BYTES", "GIN_MODE", "LOG_LEVEL", "LOG_PRETTY",
	"SWAGGER_ENABLED", "API_BASE_PATH", "DB_DRIVER", "DB_PATH", "DATABASE_URL",
	"STATIC_DIR", "INDEX_PATH", "CORS_ALLOWED_ORIGINS", "ENABLE_HSTS", "HSTS_MAX_AGE",
	"OTEL_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE",
	"OTEL_SERVICE_NAME", "OTEL_TRACES_SAMPLER_ARG",
}

func TestMain(m *testing.M) {
	for _, k := range envKeys {
		os.Unsetenv(k)
	}
	os.Exit(m.Run())
}

func setenv(t *testing.T, env map[string]string) {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func mustLoad(t *testing.T) Config {
	t.Helper()
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return cfg
}

func TestLoad_Defaults(t *testing.T) {
	cfg := mustLoad(t)

	checks := []struct {
		name      string
		got, want any
	}{
		{"port", cfg.Port, "3000"},
		{"addr", cfg.Addr(), ":3000"},
		{"base path", cfg.APIBasePath, "/api/exercise"},
		{"gin mode", cfg.GinMode, "release"},
		{"log level", cfg.LogLevel, "info"},
		{"swagger", cfg.SwaggerEnabled, false},
		{"driver", cfg.DB.Driver, "sqlite"},
		{"db path", cfg.DB.Path, "app.db"},
		{"static dir", cfg.StaticDir, "public"},
		{"index", cfg.IndexPath, "views/index.html"},
		{"shutdown", cfg.ShutdownTimeout, 10 * time.Second},
		{"cors", len(cfg.CORS.AllowedOrigins), 0},
		{"otel", cfg.OTEL.Enabled, false},
		{"service name", cfg.OTEL.ServiceName, "exercise-tracker"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v; want %v", c.name, c.got, c.want)
		}
	}
}

func TestLoad_DBDriver(t *testing.T) {
	const pgURL = "postgres://tracker:tracker@db:5432/exercise?sslmode=disable"

	cases := []struct {
		name       string
		env        map[string]string
		wantDriver string
		wantErr    string
	}{
		{"sqlite file", map[string]string{"DB_DRIVER": "sqlite", "DB_PATH": "data/tracker.db"}, "sqlite", ""},
		{"sqlite memory dsn", map[string]string{"DB_PATH": "file:x?mode=memory"}, "sqlite", ""},
		{"postgres", map[string]string{"DB_DRIVER": "postgres", "DATABASE_URL": pgURL}, "postgres", ""},
		{"postgresql alias", map[string]string{"DB_DRIVER": " PostgreSQL ", "DATABASE_URL": pgURL}, "postgres", ""},
		{"pg alias", map[string]string{"DB_DRIVER": "pg", "DATABASE_URL": pgURL}, "postgres", ""},
		{"postgres without url", map[string]string{"DB_DRIVER": "postgres"}, "", "DATABASE_URL"},
		{"blank sqlite path", map[string]string{"DB_PATH": "   "}, "", "DB_PATH"},
		{"unsupported", map[string]string{"DB_DRIVER": "mongodb"}, "", "DB_DRIVER"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setenv(t, tc.env)
			cfg, err := Load()
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("err = %v; want mention of %s", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if cfg.DB.Driver != tc.wantDriver {
				t.Fatalf("driver = %q; want %q", cfg.DB.Driver, tc.wantDriver)
			}
			if tc.wantDriver == "postgres" && cfg.DB.URL != pgURL {
				t.Fatalf("url = %q", cfg.DB.URL)
			}
		})
	}
}

func TestLoad_StaticAndBasePath(t *testing.T) {
	cases := []struct {
		name   string
		env    map[string]string
		base   string
		static string
		index  string
	}{
		{"base path normalized", map[string]string{"API_BASE_PATH": "api/exercise/"}, "/api/exercise", "public", "views/index.html"},
		{"root base path", map[string]string{"API_BASE_PATH": "/"}, "/", "public", "views/index.html"},
		{"custom assets", map[string]string{"STATIC_DIR": "web/public", "INDEX_PATH": "web/index.html"}, "/api/exercise", "web/public", "web/index.html"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setenv(t, tc.env)
			cfg := mustLoad(t)
			if cfg.APIBasePath != tc.base || cfg.StaticDir != tc.static || cfg.IndexPath != tc.index {
				t.Fatalf("base=%q static=%q index=%q", cfg.APIBasePath, cfg.StaticDir, cfg.IndexPath)
			}
		})
	}
}

func TestLoad_Timeouts(t *testing.T) {
	cases := []struct {
		key, val string
		want     time.Duration
		wantErr  string
	}{
		{"SHUTDOWN_TIMEOUT", "5s", 5 * time.Second, ""},
		{"SHUTDOWN_TIMEOUT", "soon", 10 * time.Second, ""}, // unparsable keeps the default
		{"SHUTDOWN_TIMEOUT", "-1s", 0, "SHUTDOWN_TIMEOUT"},
		{"SHUTDOWN_TIMEOUT", "0s", 0, "SHUTDOWN_TIMEOUT"},
		{"READ_TIMEOUT", "0s", 0, "timeouts must be positive"},
		{"IDLE_TIMEOUT", "-3s", 0, "timeouts must be positive"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.val, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			cfg, err := Load()
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("err = %v; want mention of %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if cfg.ShutdownTimeout != tc.want {
				t.Fatalf("ShutdownTimeout = %v; want %v", cfg.ShutdownTimeout, tc.want)
			}
		})
	}
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]struct {
		key, val, wantErr string
	}{
		"log level":        {"LOG_LEVEL", "verbose", "LOG_LEVEL"},
		"blank port":       {"PORT", "   ", "PORT must not be empty"},
		"header bytes":     {"MAX_HEADER_BYTES", "0", "MAX_HEADER_BYTES"},
		"negative hsts":    {"HSTS_MAX_AGE", "-1s", "HSTS_MAX_AGE"},
		"sample ratio > 1": {"OTEL_TRACES_SAMPLER_ARG", "1.5", "OTEL_TRACES_SAMPLER_ARG"},
		"sample ratio < 0": {"OTEL_TRACES_SAMPLER_ARG", "-0.1", "OTEL_TRACES_SAMPLER_ARG"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			if _, err := Load(); err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("err = %v; want mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoad_ServerLoggingAndProtection(t *testing.T) {
	setenv(t, map[string]string{
		"PORT":                        ":8088",
		"MAX_HEADER_BYTES":            "8192",
		"GIN_MODE":                    "weird",
		"LOG_LEVEL":                   "WARNING",
		"LOG_PRETTY":                  "yes",
		"SWAGGER_ENABLED":             "on",
		"CORS_ALLOWED_ORIGINS":        " https://fcc.example , , http://localhost:5173 ",
		"ENABLE_HSTS":                 "TRUE",
		"HSTS_MAX_AGE":                "24h",
		"OTEL_ENABLED":                "1",
		"OTEL_EXPORTER_OTLP_ENDPOINT": "otel:4317",
		"OTEL_EXPORTER_OTLP_INSECURE": "off",
		"OTEL_SERVICE_NAME":           "tracker-staging",
		"OTEL_TRACES_SAMPLER_ARG":     "0.25",
	})
	cfg := mustLoad(t)

	if cfg.Addr() != ":8088" || cfg.MaxHeaderBytes != 8192 || cfg.GinMode != "release" {
		t.Fatalf("server: addr=%q header=%d mode=%q", cfg.Addr(), cfg.MaxHeaderBytes, cfg.GinMode)
	}
	if cfg.LogLevel != "warn" || !cfg.LogPretty || !cfg.SwaggerEnabled {
		t.Fatalf("logging/docs: %+v", cfg)
	}
	if want := []string{"https://fcc.example", "http://localhost:5173"}; !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
		t.Fatalf("origins = %#v", cfg.CORS.AllowedOrigins)
	}
	if !cfg.Security.EnableHSTS || cfg.Security.HSTSMaxAge != 24*time.Hour {
		t.Fatalf("security: %+v", cfg.Security)
	}
	want := OTELConfig{Enabled: true, Endpoint: "otel:4317", Insecure: false, ServiceName: "tracker-staging", SampleRatio: 0.25}
	if cfg.OTEL != want {
		t.Fatalf("otel = %+v; want %+v", cfg.OTEL, want)
	}
}

func TestMustLoad(t *testing.T) {
	cases := []struct {
		name      string
		driver    string
		wantPanic bool
	}{
		{"defaults", "", false},
		{"bad driver", "cassandra", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.driver != "" {
				t.Setenv("DB_DRIVER", tc.driver)
			}
			defer func() {
				if r := recover(); (r != nil) != tc.wantPanic {
					t.Fatalf("panic = %v; wantPanic %v", r, tc.wantPanic)
				}
			}()
			_ = MustLoad()
		})
	}
}

func TestGetbool(t *testing.T) {
	cases := []struct {
		val       string
		def, want bool
	}{
		{"1", false, true},
		{" Yes ", false, true},
		{"on", false, true},
		{"0", true, false},
		{"OFF", true, false},
		{"n", true, false},
		{"maybe", true, true},
		{"", false, false},
	}
	for _, tc := range cases {
		t.Setenv("TRACKER_FLAG", tc.val)
		if got := getbool("TRACKER_FLAG", tc.def); got != tc.want {
			t.Fatalf("getbool(%q, %v) = %v; want %v", tc.val, tc.def, got, tc.want)
		}
	}
}

func TestNumericHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("TRACKER_NUM", "many")
	if getint("TRACKER_NUM", 7) != 7 || getfloat("TRACKER_NUM", 0.5) != 0.5 || getdur("TRACKER_NUM", time.Minute) != time.Minute {
		t.Fatalf("unparsable values should keep the defaults")
	}
	t.Setenv("TRACKER_NUM", "42")
	if getint("TRACKER_NUM", 0) != 42 || getfloat("TRACKER_NUM", 0) != 42 {
		t.Fatalf("numeric parse failed")
	}
}

func TestSplitCSVAndBasePath(t *testing.T) {
	if got := splitCSV(""); got != nil {
		t.Fatalf("splitCSV(\"\") = %#v; want nil", got)
	}
	if got := splitCSV(" a, ,b ,"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("splitCSV = %#v", got)
	}

	for in, want := range map[string]string{
		"":                "/",
		" / ":             "/",
		"api/exercise":    "/api/exercise",
		"/api/exercise//": "/api/exercise",
	} {
		if got := normalizeBasePath(in); got != want {
			t.Fatalf("normalizeBasePath(%q) = %q; want %q", in, got, want)
		}
	}
}
