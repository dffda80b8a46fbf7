package user

import (
	"context"
	"testing"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	if _, ok := FromContext(context.Background()); ok {
		t.Error("FromContext(empty) ok = true, want false")
	}

	want := User{ID: "john-doe", Email: "john@example.com"}
	got, ok := FromContext(WithContext(context.Background(), want))
	if !ok {
		t.Fatal("FromContext ok = false, want true")
	}
	if got != want {
		t.Errorf("FromContext = %+v, want %+v", got, want)
	}
}
