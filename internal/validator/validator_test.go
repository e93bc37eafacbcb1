package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		valid bool
	}{
		{name: "trunk prefix", in: "0714109550", want: "+254714109550", valid: true},
		{name: "country code", in: "+254714109550", want: "+254714109550", valid: true},
		{name: "spaces and dashes", in: "0714 109-550", want: "+254714109550", valid: true},
		{name: "range 8", in: "0812345678", want: "+254812345678", valid: true},
		{name: "range 9", in: "+254912345678", want: "+254912345678", valid: true},
		{name: "landline leading digit", in: "0201234567", valid: false},
		{name: "too short", in: "071410955", valid: false},
		{name: "too long", in: "07141095501", valid: false},
		{name: "country code without plus", in: "254714109550", valid: false},
		{name: "empty", in: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizePhone(tt.in)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	inputs := []string{"0714109550", "+254 714 109 550", "0798765432", "(0) 7 1 2 3 4 5 6 7 8"}

	for _, in := range inputs {
		once, ok := NormalizePhone(in)
		require.True(t, ok, in)

		twice, ok := NormalizePhone(once)
		require.True(t, ok, in)
		assert.Equal(t, once, twice)
		assert.Regexp(t, `^\+254[7-9][0-9]{8}$`, once)
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("jane@example.com"))
	assert.True(t, ValidEmail("jane.doe+spa@mail.example.co.ke"))
	assert.False(t, ValidEmail(""))
	assert.False(t, ValidEmail("jane"))
	assert.False(t, ValidEmail("jane@localhost"))
	assert.False(t, ValidEmail("Jane <jane@example.com>"))
	assert.False(t, ValidEmail("jane@@example.com"))
}

func TestNormalizeTime(t *testing.T) {
	got, ok := NormalizeTime("9:30")
	require.True(t, ok)
	assert.Equal(t, "09:30", got)

	got, ok = NormalizeTime("10:00:00")
	require.True(t, ok)
	assert.Equal(t, "10:00", got)

	_, ok = NormalizeTime("25:00")
	assert.False(t, ok)

	_, ok = NormalizeTime("ten")
	assert.False(t, ok)
}

func TestValidator_FutureDate(t *testing.T) {
	nairobi := time.FixedZone("EAT", 3*60*60)
	today := time.Date(2025, 5, 31, 23, 30, 0, 0, nairobi)

	t.Run("today is allowed", func(t *testing.T) {
		v := New()
		date := v.FutureDate("2025-05-31", today)
		assert.True(t, v.Valid())
		assert.Equal(t, "2025-05-31", date.Format("2006-01-02"))
	})

	t.Run("tomorrow is allowed", func(t *testing.T) {
		v := New()
		v.FutureDate("2025-06-01", today)
		assert.True(t, v.Valid())
	})

	t.Run("yesterday is rejected", func(t *testing.T) {
		v := New()
		v.FutureDate("2025-05-30", today)
		assert.Equal(t, Errors{MsgDatePast}, v.Errors())
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		v := New()
		v.FutureDate("31/05/2025", today)
		assert.Equal(t, Errors{MsgDateInvalid}, v.Errors())
	})

	t.Run("empty is required", func(t *testing.T) {
		v := New()
		v.FutureDate("  ", today)
		assert.Equal(t, Errors{MsgDateRequired}, v.Errors())
	})
}

func TestValidator_AccumulatesAllErrors(t *testing.T) {
	v := New()
	today := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	v.Required("  ", MsgNameRequired)
	v.Email("not-an-email")
	v.Phone("12345")
	v.Required("", MsgServiceRequired)
	v.FutureDate("2025-01-01", today)
	v.Time("")

	assert.False(t, v.Valid())
	assert.Equal(t, Errors{
		MsgNameRequired,
		MsgEmailInvalid,
		MsgPhoneInvalid,
		MsgServiceRequired,
		MsgDatePast,
		MsgTimeRequired,
	}, v.Errors())
	assert.Equal(t,
		"Name is required, Valid email is required, Valid phone number is required, Service selection is required, Please select a future date, Time is required",
		v.Errors().Error())
}

func TestValidator_ReturnsNormalizedValues(t *testing.T) {
	v := New()

	assert.Equal(t, "Jane", v.Required("  Jane \n", MsgNameRequired))
	assert.Equal(t, "jane@example.com", v.Email(" jane@example.com "))
	assert.Equal(t, "+254714109550", v.Phone("0714 109 550"))
	assert.Equal(t, "08:00", v.Time("8:00"))
	assert.True(t, v.Valid())
}

func TestValidator_RejectsInvalidUTF8(t *testing.T) {
	v := New()

	v.Required("Jane\xff", MsgNameRequired)
	v.Required("Hi\xc3", MsgSubjectRequired)
	v.Optional("notes \xfe")
	v.Email("jane\xff@example.com")

	assert.False(t, v.Valid())
	assert.Equal(t, Errors{MsgInvalidCharacters, MsgEmailInvalid}, v.Errors())
}
