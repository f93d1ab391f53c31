package zerror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/catalog-e2e/pkg/zerror"
)

func TestZError(t *testing.T) {
	base := zerror.NewConstraintViolation("PRICE_NOT_POSITIVE", "price must be positive")

	t.Run("Should format kind, code and message", func(t *testing.T) {
		err := base.WithMsgf("product %d: price %v must be > 0", 7, -1.5)
		assert.Equal(t, "ConstraintViolation [PRICE_NOT_POSITIVE]: product 7: price -1.5 must be > 0", err.Error())
		assert.Equal(t, "price must be positive", base.Msg(), "template must not be mutated")
	})

	t.Run("Should match templates through wrapping", func(t *testing.T) {
		err := fmt.Errorf("check product: %w", base.WithMsgf("other text"))
		assert.True(t, errors.Is(err, base))
		assert.False(t, errors.Is(err, zerror.NewConstraintViolation("RATING_OUT_OF_RANGE", "")))
		assert.Equal(t, zerror.KindConstraintViolation, zerror.KindOf(err))
	})

	t.Run("Should expose parent", func(t *testing.T) {
		parent := errors.New("unexpected end of JSON input")
		err := zerror.NewStructuralMismatch("BODY_NOT_JSON", "decode body").WrapParent(parent)
		assert.ErrorIs(t, err, parent)
		assert.Contains(t, err.Error(), "unexpected end of JSON input")
	})

	t.Run("Should report unknown kind for plain errors", func(t *testing.T) {
		assert.Equal(t, zerror.KindUnknown, zerror.KindOf(errors.New("boom")))
		assert.Equal(t, "Unknown", zerror.KindUnknown.String())
	})
}
