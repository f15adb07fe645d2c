package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/stretchr/testify/require"
)

func TestNewPaging(t *testing.T) {
	t.Parallel()
	require.Equal(t, 1, model.NewPaging(1, 10, 0).NumPages)
	require.Equal(t, 1, model.NewPaging(1, 10, 10).NumPages)
	require.Equal(t, 2, model.NewPaging(1, 10, 11).NumPages)
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()
	var form model.RenewBookForm
	require.NoError(t, json.Unmarshal([]byte(`{"renewal_date":"2024-03-17"}`), &form))
	require.Equal(t, model.NewDate(2024, time.March, 17), *form.RenewalDate)

	b, err := json.Marshal(form)
	require.NoError(t, err)
	require.JSONEq(t, `{"renewal_date":"2024-03-17"}`, string(b))

	require.Error(t, json.Unmarshal([]byte(`{"renewal_date":"17/03/2024"}`), &form))

	var empty model.AuthorForm
	require.NoError(t, json.Unmarshal([]byte(`{"date_of_birth":""}`), &empty))
	empty.Normalize()
	require.Nil(t, empty.DateOfBirth)
}

func TestToday(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, time.March, 10, 23, 59, 0, 0, time.UTC)
	require.Equal(t, "2024-03-10", model.Today(now).String())
	require.Equal(t, "2024-03-31", model.Today(now).AddDays(21).String())
}

func TestBookInstance_MarkOverdue(t *testing.T) {
	t.Parallel()
	today := model.NewDate(2024, time.March, 10)
	past := today.AddDays(-1)
	bi := model.BookInstance{DueBack: &past}
	bi.MarkOverdue(today)
	require.True(t, bi.IsOverdue)

	bi.DueBack = &today
	bi.MarkOverdue(today)
	require.False(t, bi.IsOverdue)

	bi.DueBack = nil
	bi.MarkOverdue(today)
	require.False(t, bi.IsOverdue)
}

func TestForms_Defaults(t *testing.T) {
	t.Parallel()
	bf := model.NewBookForm()
	require.Equal(t, 1, *bf.LanguageID)
	af := model.NewAuthorForm()
	require.Equal(t, "2018-01-05", af.DateOfDeath.String())
}
