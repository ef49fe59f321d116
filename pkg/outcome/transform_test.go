package outcome

import (
	"strconv"
	"testing"
)

func TestMap_OnFailure(t *testing.T) {
	t.Parallel()
	o := Fail(404)

	mapped := Map(o, strconv.Itoa)
	if e, failed := mapped.Err().Get(); !failed || e != "404" {
		t.Fatalf("expected mapped error '404', got: failed=%v, err=%v", failed, e)
	}
}

func TestMap_PassesSuccessThrough(t *testing.T) {
	t.Parallel()
	called := false
	mapped := Map(Succeed[int](), func(e int) string {
		called = true
		return strconv.Itoa(e)
	})

	if !mapped.IsSuccess() {
		t.Fatalf("expected success to pass through Map")
	}
	if called {
		t.Fatalf("op should not be called on success")
	}
}

func TestMap_IdentityLaw(t *testing.T) {
	t.Parallel()
	id := func(e string) string { return e }

	for _, o := range []Outcome[string]{Succeed[string](), Fail("e")} {
		if got := Map(o, id); got != o {
			t.Fatalf("expected Map(id) to be identity, got: %v from %v", got, o)
		}
	}
}

func TestFlatten(t *testing.T) {
	t.Parallel()
	e := Fail("deep")

	if got := Flatten(Fail(e)); got != e {
		t.Fatalf("expected inner failure, got: %v", got)
	}
	if got := Flatten(Fail(Succeed[string]())); !got.IsSuccess() {
		t.Fatalf("expected nested success to collapse to success, got: %v", got)
	}
	if got := Flatten(Succeed[Outcome[string]]()); !got.IsSuccess() {
		t.Fatalf("expected outer success to collapse to success, got: %v", got)
	}
}

func TestContains(t *testing.T) {
	t.Parallel()
	if !Contains(Fail("a"), "a") {
		t.Fatalf("expected Failed(a) to contain a")
	}
	if Contains(Fail("a"), "b") {
		t.Fatalf("expected Failed(a) not to contain b")
	}
	if Contains(Succeed[string](), "a") {
		t.Fatalf("expected success to contain nothing")
	}
}

func TestAndThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	called := false
	got := AndThen(Fail("stop"), func() Outcome[string] {
		called = true
		return Succeed[string]()
	})

	if e, failed := got.Err().Get(); !failed || e != "stop" {
		t.Fatalf("expected failure 'stop', got: failed=%v, err=%v", failed, e)
	}
	if called {
		t.Fatalf("next should not run after a failure")
	}
}

func TestAndThen_ContinuesOnSuccess(t *testing.T) {
	t.Parallel()
	got := AndThen(Succeed[string](), func() Outcome[string] {
		return Fail("later")
	})

	if e, failed := got.Err().Get(); !failed || e != "later" {
		t.Fatalf("expected continuation result, got: failed=%v, err=%v", failed, e)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	onSuccess := func() string { return "ok" }
	onFailure := func(e int) string { return "err:" + strconv.Itoa(e) }

	if got := Finally(Succeed[int](), onSuccess, onFailure); got != "ok" {
		t.Fatalf("expected 'ok', got: %q", got)
	}
	if got := Finally(Fail(5), onSuccess, onFailure); got != "err:5" {
		t.Fatalf("expected 'err:5', got: %q", got)
	}
}
