package zipinstaller

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfrastructureError(t *testing.T) {
	base := errors.New("no font")
	err := fmt.Errorf("startup: %w", NewInfrastructureError("load_font", base))

	assert.True(t, IsInfrastructureError(err))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "startup: zipinstaller: load_font: no font", err.Error())
	assert.Equal(t, "zipinstaller: render", NewInfrastructureError("render", nil).Error())
	assert.False(t, IsInfrastructureError(base))
}

func TestFlowErrors(t *testing.T) {
	assert.True(t, IsCancelled(fmt.Errorf("screen: %w", ErrCancelled)))
	assert.False(t, IsCancelled(ErrQuit))
	assert.True(t, IsQuit(fmt.Errorf("router: %w", ErrQuit)))
}
