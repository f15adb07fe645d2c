package validate_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/catalog-service/pkg/validate"
	"github.com/stretchr/testify/require"
)

type renewal struct {
	RenewalDate *time.Time `json:"renewal_date" validate:"required,notpast,maxweeks=4"`
}

type named struct {
	Title string `json:"title" validate:"required,max=5"`
}

func TestCustomValidator_RenewalDate(t *testing.T) {
	t.Parallel()
	day := func(offset int) *time.Time {
		d := time.Date(2024, time.March, 10+offset, 0, 0, 0, 0, time.UTC)
		return &d
	}

	clocks := []struct {
		name string
		now  time.Time
	}{
		{name: "utc", now: time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)},
		{name: "west of utc", now: time.Date(2024, time.March, 10, 9, 30, 0, 0, time.FixedZone("UTC-5", -5*60*60))},
		{name: "east of utc", now: time.Date(2024, time.March, 10, 9, 30, 0, 0, time.FixedZone("UTC+3", 3*60*60))},
		{name: "late evening far west", now: time.Date(2024, time.March, 10, 23, 45, 0, 0, time.FixedZone("UTC-10", -10*60*60))},
		{name: "just after midnight far east", now: time.Date(2024, time.March, 10, 0, 15, 0, 0, time.FixedZone("UTC+14", 14*60*60))},
	}
	tests := []struct {
		name    string
		date    *time.Time
		wantErr map[string]string
	}{
		{name: "today", date: day(0)},
		{name: "in a week", date: day(7)},
		{name: "exactly four weeks", date: day(28)},
		{name: "missing", date: nil, wantErr: map[string]string{"renewal_date": "This field is required."}},
		{name: "yesterday", date: day(-1), wantErr: map[string]string{"renewal_date": "Invalid date - renewal in past"}},
		{name: "four weeks and a day", date: day(29), wantErr: map[string]string{"renewal_date": "Invalid date - renewal more than 4 weeks ahead"}},
	}
	for _, clock := range clocks {
		clock := clock
		cv := validate.NewCustomValidator(validate.WithClock(func() time.Time { return clock.now }))
		for _, tt := range tests {
			tt := tt
			t.Run(clock.name+"/"+tt.name, func(t *testing.T) {
				t.Parallel()
				err := cv.Validate(renewal{RenewalDate: tt.date})
				if tt.wantErr == nil {
					require.NoError(t, err)
					return
				}
				require.Error(t, err)
				require.Equal(t, tt.wantErr, validate.FieldErrors(err))
			})
		}
	}
}

func TestFieldErrors(t *testing.T) {
	t.Parallel()
	cv := validate.NewCustomValidator()

	require.Equal(t, map[string]string{"title": "This field is required."}, validate.FieldErrors(cv.Validate(named{})))
	require.Equal(t, map[string]string{"title": "Ensure this value has at most 5 characters."}, validate.FieldErrors(cv.Validate(named{Title: "Dom Casmurro"})))
	require.Nil(t, validate.FieldErrors(nil))
}
