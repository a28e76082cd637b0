package threadcore

import "testing"

func TestDefaults(t *testing.T) {
	if !Enabled() {
		t.Fatal("thread support disabled by default")
	}
	if !TLSEmulation() {
		t.Fatal("TLS emulation off by default")
	}
	if MaxThreads() != 0 {
		t.Fatalf("default max threads = %d, want 0 (unlimited)", MaxThreads())
	}
}

func TestSetCollector(t *testing.T) {
	ran := false
	SetCollector(func() { ran = true })
	defer SetCollector(nil)

	Collect()
	if !ran {
		t.Fatal("collector pass did not run")
	}

	SetCollector(nil)
	Collect() // must not panic with no collector installed
}
