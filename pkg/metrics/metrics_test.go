package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSetArmed(t *testing.T) {
	SetArmed(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(Armed))

	SetArmed(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(Armed))
}
