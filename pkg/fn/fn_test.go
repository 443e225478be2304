package fn

import (
	"context"
	"errors"
	"strconv"
	"testing"
)

func TestMapFilter(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(i int) string { return strconv.Itoa(i * 2) })
	if len(got) != 3 || got[0] != "2" || got[2] != "6" {
		t.Errorf("Map = %v", got)
	}
	evens := Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	if len(evens) != 2 || evens[0] != 2 || evens[1] != 4 {
		t.Errorf("Filter = %v", evens)
	}
}

func TestFilterMap(t *testing.T) {
	got := FilterMap([]string{"1", "x", "3"}, func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		return n, err == nil
	})
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("FilterMap = %v", got)
	}
}

func TestChunk(t *testing.T) {
	chunks := Chunk([]int{1, 2, 3, 4, 5}, 2)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if len(chunks[2]) != 1 || chunks[2][0] != 5 {
		t.Errorf("last chunk = %v", chunks[2])
	}
	if Chunk([]int{1}, 0) != nil {
		t.Error("expected nil for n=0")
	}
}

func TestUniqueBy(t *testing.T) {
	type rec struct{ k, v string }
	got := UniqueBy([]rec{{"a", "1"}, {"a", "2"}, {"b", "3"}}, func(r rec) string { return r.k })
	if len(got) != 2 || got[0].v != "1" {
		t.Errorf("UniqueBy = %v", got)
	}
	if u := Unique([]int{1, 1, 2}); len(u) != 2 {
		t.Errorf("Unique = %v", u)
	}
}

func TestResult(t *testing.T) {
	r := Ok(7)
	if !r.IsOk() || r.UnwrapOr(0) != 7 {
		t.Error("Ok result broken")
	}
	e := Err[int](errors.New("boom"))
	if !e.IsErr() || e.UnwrapOr(3) != 3 {
		t.Error("Err result broken")
	}
	if v, _ := FromPair(5, nil).Unwrap(); v != 5 {
		t.Error("FromPair ok broken")
	}
	if FromPair(0, errors.New("x")).IsOk() {
		t.Error("FromPair err broken")
	}
}

func TestCollect(t *testing.T) {
	all := Collect([]Result[int]{Ok(1), Ok(2)})
	if vals, _ := all.Unwrap(); len(vals) != 2 {
		t.Errorf("Collect = %v", vals)
	}
	bad := Collect([]Result[int]{Ok(1), Err[int](errors.New("boom"))})
	if bad.IsOk() {
		t.Error("expected error from Collect")
	}
}

func TestThen(t *testing.T) {
	double := MapStage(func(i int) int { return i * 2 })
	str := MapStage(strconv.Itoa)
	both := Then(double, str)
	if v, _ := both(context.Background(), 4).Unwrap(); v != "8" {
		t.Errorf("Then = %v", v)
	}

	fail := Stage[int, int](func(context.Context, int) Result[int] {
		return Err[int](errors.New("boom"))
	})
	if Then(fail, str)(context.Background(), 1).IsOk() {
		t.Error("expected short-circuit on error")
	}
}

func TestTracedStage(t *testing.T) {
	ok := TracedStage("ok", MapStage(func(i int) int { return i + 1 }))
	if v, _ := ok(context.Background(), 1).Unwrap(); v != 2 {
		t.Errorf("TracedStage = %v", v)
	}
	bad := TracedStage("bad", Stage[int, int](func(context.Context, int) Result[int] {
		return Err[int](errors.New("boom"))
	}))
	if bad(context.Background(), 1).IsOk() {
		t.Error("expected error")
	}
}

func TestParMap(t *testing.T) {
	in := make([]int, 100)
	for i := range in {
		in[i] = i
	}
	out := ParMap(in, 8, func(i int) int { return i * i })
	for i, v := range out {
		if v != i*i {
			t.Fatalf("out[%d] = %d, order not preserved", i, v)
		}
	}
	if got := ParMap(nil, 4, func(i int) int { return i }); len(got) != 0 {
		t.Errorf("empty input = %v", got)
	}
}
