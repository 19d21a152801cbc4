package rgb_test

import (
	"encoding/json"
	"errors"
	"testing"

	"code.vegaprotocol.io/rgbwallet/rgb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetType(t *testing.T) {
	t.Run("Decoding supported asset types succeeds", testDecodingSupportedAssetTypesSucceeds)
	t.Run("Decoding unsupported asset type fails", testDecodingUnsupportedAssetTypeFails)
}

func testDecodingSupportedAssetTypesSucceeds(t *testing.T) {
	tcs := map[string]rgb.AssetType{
		`"NIA"`: rgb.AssetTypeNIA,
		`"CFA"`: rgb.AssetTypeCFA,
		`"UDA"`: rgb.AssetTypeUDA,
	}

	for input, expected := range tcs {
		t.Run(input, func(tt *testing.T) {
			var at rgb.AssetType

			require.NoError(tt, json.Unmarshal([]byte(input), &at))
			assert.Equal(tt, expected, at)
		})
	}
}

func testDecodingUnsupportedAssetTypeFails(t *testing.T) {
	for _, input := range []string{`"RGB21"`, `"nia"`, `"Cfa"`, `""`} {
		t.Run(input, func(tt *testing.T) {
			var at rgb.AssetType

			err := json.Unmarshal([]byte(input), &at)

			require.Error(tt, err)
			assert.ErrorIs(tt, err, rgb.ErrUnsupportedAssetType)
		})
	}
}

func TestInvoiceType(t *testing.T) {
	var it rgb.InvoiceType

	require.NoError(t, json.Unmarshal([]byte(`"WITNESS"`), &it))
	assert.Equal(t, rgb.InvoiceTypeWitness, it)

	require.NoError(t, json.Unmarshal([]byte(`"BLIND"`), &it))
	assert.Equal(t, rgb.InvoiceTypeBlind, it)

	err := json.Unmarshal([]byte(`"OPAQUE"`), &it)
	assert.ErrorIs(t, err, rgb.ErrUnsupportedInvoiceType)

	err = json.Unmarshal([]byte(`"blind"`), &it)
	assert.ErrorIs(t, err, rgb.ErrUnsupportedInvoiceType)

	text, err := json.Marshal(rgb.InvoiceTypeWitness)
	require.NoError(t, err)
	assert.Equal(t, `"WITNESS"`, string(text))
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("node unreachable")

	tcs := []struct {
		name     string
		err      error
		kind     rgb.ErrorKind
		internal bool
		message  string
	}{
		{
			name:     "online",
			err:      rgb.NewOnlineError(cause),
			kind:     rgb.KindOnline,
			internal: true,
			message:  "online error: node unreachable",
		}, {
			name:     "invoice",
			err:      rgb.NewInvoiceError(cause),
			kind:     rgb.KindInvoice,
			internal: true,
			message:  "invoice error: node unreachable",
		}, {
			name:     "generic",
			err:      rgb.NewError(cause),
			kind:     rgb.KindGeneric,
			internal: false,
			message:  "node unreachable",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(tt *testing.T) {
			wrapped := errors.Join(errors.New("context"), tc.err)

			kind, ok := rgb.KindOf(wrapped)
			require.True(tt, ok)
			assert.Equal(tt, tc.kind, kind)

			var rgbErr *rgb.Error
			require.ErrorAs(tt, wrapped, &rgbErr)
			assert.Equal(tt, tc.internal, rgbErr.IsInternal())
			assert.Equal(tt, tc.message, rgbErr.Error())
			assert.ErrorIs(tt, tc.err, cause)
		})
	}

	t.Run("Plain error has no kind", func(tt *testing.T) {
		_, ok := rgb.KindOf(cause)
		assert.False(tt, ok)
	})
}
