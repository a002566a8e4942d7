package angle

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	expectNormalize(t, 0, 0)
	expectNormalize(t, 179, 179)
	expectNormalize(t, -179, -179)
	expectNormalize(t, 180, 180)
	expectNormalize(t, -180, 180)
	expectNormalize(t, 360, 0)
	expectNormalize(t, 361, 1)
	expectNormalize(t, 359, -1)
	expectNormalize(t, -360, 0)
	expectNormalize(t, 720+90, 90)
	expectNormalize(t, -720-90, -90)
	expectNormalize(t, 540, 180)
}

func TestDelta(t *testing.T) {
	expectDelta(t, 0, 90, 90)
	expectDelta(t, 90, 0, -90)
	expectDelta(t, 10, 350, -20)
	expectDelta(t, 350, 10, 20)
	expectDelta(t, 0, 180, 180)
	expectDelta(t, 45, 45, 0)
	expectDelta(t, 720, 90, 90)
}

func TestToTarget(t *testing.T) {
	expectToTarget(t, 1, 0, 0)
	expectToTarget(t, 0, 1, 90)
	expectToTarget(t, -1, 0, 180)
	expectToTarget(t, 0, -1, -90)
	expectToTarget(t, 1, 1, 45)
	expectToTarget(t, 0, 0, 0)
}

func expectNormalize(t *testing.T, in, expected float64) {
	t.Helper()
	actual := Normalize(in)
	if actual <= -180 || actual > 180 {
		t.Errorf("Normalize(%v) = %v, out of range (-180, 180]", in, actual)
	}
	if math.Abs(actual-expected) > 1e-9 {
		t.Errorf("Normalize(%v) = %v, expected %v", in, actual, expected)
	}
}

func expectDelta(t *testing.T, from, to, expected float64) {
	t.Helper()
	actual := Delta(from, to)
	if math.Abs(actual) > 180 {
		t.Errorf("Delta(%v, %v) = %v, magnitude above 180", from, to, actual)
	}
	if math.Abs(actual-expected) > 1e-9 {
		t.Errorf("Delta(%v, %v) = %v, expected %v", from, to, actual, expected)
	}
}

func expectToTarget(t *testing.T, dx, dy, expected float64) {
	t.Helper()
	actual := ToTarget(dx, dy)
	if math.Abs(actual-expected) > 1e-9 {
		t.Errorf("ToTarget(%v, %v) = %v, expected %v", dx, dy, actual, expected)
	}
}
