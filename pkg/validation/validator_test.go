package validation

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type sampleRow struct {
	Status   string      `validate:"required,oneof='government bond' 'certificate of deposit' other"`
	Risk     null.String `validate:"omitempty,oneof=low medium high"`
	LastSeen null.Time   `validate:"omitempty"`
	Phone    string      `validate:"bank_phone"`
}

func TestValidator_Rules(t *testing.T) {
	v := New()

	assert.NoError(t, v.Var("2024-02-29", "iso_date"))
	assert.Error(t, v.Var("2023-02-29", "iso_date"))
	assert.Error(t, v.Var("29.02.2024", "iso_date"))

	assert.NoError(t, v.Var("09:30", "clock_time"))
	assert.NoError(t, v.Var("23:59:59", "clock_time"))
	assert.Error(t, v.Var("24:00", "clock_time"))

	assert.NoError(t, v.Var("+1234567", "bank_phone"))
	assert.Error(t, v.Var("12-34", "bank_phone"))
}

func TestValidator_NullTypes(t *testing.T) {
	v := New()

	ok := sampleRow{Status: "government bond", Risk: null.String{}, LastSeen: null.TimeFrom(time.Now()), Phone: "5551234"}
	assert.NoError(t, v.Validate(&ok))

	badRisk := ok
	badRisk.Risk = null.StringFrom("extreme")
	assert.Error(t, v.Validate(&badRisk))

	badStatus := ok
	badStatus.Status = "bond"
	assert.Error(t, v.Validate(&badStatus))
}

type rateRow struct {
	Rate decimal.Decimal `validate:"gt=0,lte=100"`
}

func TestValidator_DecimalRange(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&rateRow{Rate: decimal.RequireFromString("100")}))
	assert.NoError(t, v.Validate(&rateRow{Rate: decimal.RequireFromString("0.01")}))
	assert.Error(t, v.Validate(&rateRow{Rate: decimal.Zero}))
	assert.Error(t, v.Validate(&rateRow{Rate: decimal.RequireFromString("100.01")}))
}
