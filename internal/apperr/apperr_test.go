package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestKindHTTPMapping(t *testing.T) {
	require.Equal(t, fiber.StatusUnauthorized, HTTPStatus(KindInvalidToken))
	require.Equal(t, fiber.StatusConflict, HTTPStatus(KindInvalidTransition))
	require.Equal(t, fiber.StatusConflict, HTTPStatus(KindDuplicate))
	require.Equal(t, fiber.StatusNotFound, HTTPStatus(KindNotFound))
	require.Equal(t, fiber.StatusBadRequest, HTTPStatus(KindBadRequest))
	require.Equal(t, fiber.StatusInternalServerError, HTTPStatus(Kind("bilinmeyen")))
}

func TestErrorUnwrapsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("scan başarısız: %w", InvalidToken("Geçersiz veya pasif QR kodu"))

	var appErr *Error
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, KindInvalidToken, appErr.Kind)
	require.Equal(t, "Geçersiz veya pasif QR kodu", appErr.Message)
}
