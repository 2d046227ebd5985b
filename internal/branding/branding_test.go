package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "askedit" {
		t.Errorf("CLIName() = %q, want askedit", got)
	}
	if got := HomeDir(); got != ".askedit" {
		t.Errorf("HomeDir() = %q, want .askedit", got)
	}
	if got := EnvPrefix(); got != "ASKEDIT" {
		t.Errorf("EnvPrefix() = %q, want ASKEDIT", got)
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("models_dir"); got != "ASKEDIT_MODELS_DIR" {
		t.Errorf("EnvVar(models_dir) = %q, want ASKEDIT_MODELS_DIR", got)
	}
}
