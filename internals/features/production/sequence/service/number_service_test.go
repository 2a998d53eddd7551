// internals/features/production/sequence/service/number_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPlanNumber(t *testing.T) {
	tgl := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "RP-20260901-0001", FormatPlanNumber(tgl, 1))
	assert.Equal(t, "RP-20260901-0042", FormatPlanNumber(tgl, 42))
	assert.Equal(t, "RP-20260901-12345", FormatPlanNumber(tgl, 12345))
}

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "ORD-0001", FormatOrderNumber(1))
	assert.Equal(t, "ORD-0999", FormatOrderNumber(999))
	assert.Equal(t, "ORD-10000", FormatOrderNumber(10000))
}

func TestFormatReportNumber(t *testing.T) {
	tgl := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "LAP-PROD-20260105-0003", FormatReportNumber(tgl, 3))
}

func TestDailyScope(t *testing.T) {
	tgl := time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "20261231", DailyScope(tgl))
}
