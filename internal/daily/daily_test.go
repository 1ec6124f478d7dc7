package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2024, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2024-03-01", DateKey(d))
}

func TestIndexIsStableWithinADay(t *testing.T) {
	morning := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, Index(morning, "salt", 500), Index(evening, "salt", 500))

	for day := 0; day < 50; day++ {
		i := Index(morning.AddDate(0, 0, day), "salt", 7)
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 7)
	}
	assert.Zero(t, Index(morning, "salt", 0))
}

func TestIndexDependsOnSalt(t *testing.T) {
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	differs := false
	for day := 0; day < 10 && !differs; day++ {
		date := d.AddDate(0, 0, day)
		differs = Index(date, "one", 1000) != Index(date, "two", 1000)
	}
	assert.True(t, differs)
}

func TestTarget(t *testing.T) {
	list := []solver.Word{"crane", "slate", "plate"}
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	w, ok := Target(d, "salt", list)
	assert.True(t, ok)
	assert.Equal(t, list[Index(d, "salt", len(list))], w)

	_, ok = Target(d, "salt", nil)
	assert.False(t, ok)
}
