package glint

import "testing"

func bindingFor(t *testing.T, token, action, category string, priority int) Binding {
	t.Helper()
	combo, ok := DecodeToken(token)
	if !ok {
		t.Fatalf("bad token %q", token)
	}
	return Binding{Combo: combo, Action: action, Category: category, Priority: priority}
}

func TestRegistryResolve(t *testing.T) {
	reg := NewRegistry()
	reg.MustBind(bindingFor(t, "f5", "copy", "files", 10))

	combo, _ := DecodeToken("f5")
	action, ok := reg.Resolve(combo)
	if !ok || action != "copy" {
		t.Errorf("Resolve(f5) = %q,%v, want copy,true", action, ok)
	}

	if _, ok := reg.Resolve(Combo(KeyF6, ModNone)); ok {
		t.Error("unbound combination resolved")
	}
}

func TestRegistryPriorityWins(t *testing.T) {
	reg := NewRegistry()
	reg.MustBind(bindingFor(t, "q", "app.back", "files", 5))
	reg.MustBind(bindingFor(t, "q", "editor.quit", "user", 100))

	combo, _ := DecodeToken("q")
	action, _ := reg.Resolve(combo)
	if action != "editor.quit" {
		t.Errorf("Resolve(q) = %q, want the higher-priority editor.quit", action)
	}
}

// Registration order must not matter, only priority.
func TestRegistryPriorityOrderIndependent(t *testing.T) {
	reg := NewRegistry()
	reg.MustBind(bindingFor(t, "q", "high", "user", 100))
	reg.MustBind(bindingFor(t, "q", "low", "files", 5))

	combo, _ := DecodeToken("q")
	if action, _ := reg.Resolve(combo); action != "high" {
		t.Errorf("Resolve(q) = %q, want high", action)
	}
}

func TestRegistryDuplicatePriorityRejected(t *testing.T) {
	reg := NewRegistry()
	reg.MustBind(bindingFor(t, "f8", "delete", "files", 10))

	err := reg.Bind(bindingFor(t, "f8", "purge", "files", 10))
	if err == nil {
		t.Fatal("duplicate priority in the same category accepted")
	}

	// same priority in another category is fine
	if err := reg.Bind(bindingFor(t, "f8", "purge", "user", 10)); err != nil {
		t.Errorf("distinct category rejected: %v", err)
	}
}

func TestRegistryUnbind(t *testing.T) {
	reg := NewRegistry()
	reg.MustBind(bindingFor(t, "f5", "copy", "files", 10))

	combo, _ := DecodeToken("f5")
	reg.Unbind(combo)

	if _, ok := reg.Resolve(combo); ok {
		t.Error("combination still resolves after Unbind")
	}
}

func TestRegistryBindingsFor(t *testing.T) {
	reg := NewRegistry()
	reg.MustBind(bindingFor(t, "f8", "delete", "files", 10))
	reg.MustBind(bindingFor(t, "delete", "delete", "files", 5))

	got := reg.BindingsFor("delete")
	if len(got) != 2 {
		t.Fatalf("BindingsFor = %d bindings, want 2", len(got))
	}
	if got[0].Priority < got[1].Priority {
		t.Error("bindings not sorted by descending priority")
	}
}

func TestRegistryAllGroupsByCategory(t *testing.T) {
	reg := NewRegistry()
	reg.MustBind(bindingFor(t, "f5", "copy", "files", 10))
	reg.MustBind(bindingFor(t, "q", "quit", "app", 10))
	reg.MustBind(bindingFor(t, "f8", "delete", "files", 20))

	all := reg.All()
	if len(all) != 2 {
		t.Fatalf("All = %d categories, want 2", len(all))
	}
	files := all["files"]
	if len(files) != 2 {
		t.Fatalf("files category = %d bindings, want 2", len(files))
	}
	if files[0].Action != "delete" {
		t.Errorf("files[0] = %q, want the higher-priority delete first", files[0].Action)
	}
}

func TestBindToken(t *testing.T) {
	reg := NewRegistry()
	if err := reg.BindToken("ctrl+r", "reload", "refresh the panes", "files", 10); err != nil {
		t.Fatalf("BindToken: %v", err)
	}
	if err := reg.BindToken("not-a-key", "x", "", "files", 10); err == nil {
		t.Error("invalid token accepted")
	}
}
