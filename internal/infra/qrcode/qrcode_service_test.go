package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateTrackingQRCode(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://track.example.com/")

	data, err := svc.GenerateTrackingQRCode("0d9257e6-1c3d-4f5a-9e6b-7a8c9d0e1f2a")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestQRCodeService_DifferentOrdersDifferentCodes(t *testing.T) {
	svc := NewQRCodeService(128, "L", "http://localhost:8080")

	first, err := svc.GenerateTrackingQRCode("order-a")
	require.NoError(t, err)
	second, err := svc.GenerateTrackingQRCode("order-b")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(64, "X", "http://localhost:8080")

	data, err := svc.GenerateTrackingQRCode("order-a")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
