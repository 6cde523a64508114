package templatemethod

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepare(t *testing.T) {
	tests := []struct {
		name   string
		recipe Recipe
		want   []string
	}{
		{
			name:   "tea always gets condiments",
			recipe: Tea{},
			want:   []string{"Boiling water", "Steeping the tea", "Pouring into cup", "Adding lemon", "Tea is ready"},
		},
		{
			name:   "coffee with milk",
			recipe: Coffee{},
			want:   []string{"Boiling water", "Dripping coffee through filter", "Pouring into cup", "Adding sugar and milk", "Coffee is ready"},
		},
		{
			name:   "black coffee skips the hook",
			recipe: Coffee{Black: true},
			want:   []string{"Boiling water", "Dripping coffee through filter", "Pouring into cup", "Coffee is ready"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Prepare(tt.recipe))
		})
	}
}
