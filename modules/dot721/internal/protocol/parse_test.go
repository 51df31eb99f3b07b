package protocol

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice = "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5"
	bob   = "14E5nqKAp3oAJcmzgZhUD2RcptBeUBScxKHgJKU4HPNcKVf3"

	// alice on the generic substrate network (prefix 42)
	aliceSubstrate = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
)

func TestParse(t *testing.T) {
	parser := NewParser(0)

	testcases := []struct {
		name     string
		raw      string
		expected Content
	}{
		{
			name: "create_minimal",
			raw:  `{"p":"dot-721","op":"create","metadata":"ipfs://QmCollection/collection.json"}`,
			expected: &CreateContent{
				Metadata: "ipfs://QmCollection/collection.json",
			},
		},
		{
			name: "create_full",
			raw: `{"p":"dot-721","op":"create","metadata":"https://example.com/c.json","issuer":"` + alice + `",
				"base_uri":"ipfs://QmBase/","supply":100,
				"mint_settings":{"mode":"whitelist","start":10,"end":2000,"price":"10000000000","limit":2}}`,
			expected: &CreateContent{
				Metadata: "https://example.com/c.json",
				Issuer:   lo.ToPtr(alice),
				BaseURI:  lo.ToPtr("ipfs://QmBase/"),
				Supply:   lo.ToPtr(int64(100)),
				MintSettings: &MintSettings{
					Mode:  lo.ToPtr(MintModeWhitelist),
					Start: lo.ToPtr(int64(10)),
					End:   lo.ToPtr(int64(2000)),
					Price: lo.ToPtr(decimal.RequireFromString("10000000000")),
					Limit: lo.ToPtr(int64(2)),
				},
			},
		},
		{
			name: "create_price_beyond_uint64",
			raw:  `{"p":"dot-721","op":"create","metadata":"ipfs://Qm/c.json","mint_settings":{"price":"340282366920938463463374607431768211455"}}`,
			expected: &CreateContent{
				Metadata: "ipfs://Qm/c.json",
				MintSettings: &MintSettings{
					Price: lo.ToPtr(decimal.RequireFromString("340282366920938463463374607431768211455")),
				},
			},
		},
		{
			name: "create_integral_float",
			raw:  `{"p":"dot-721","op":"create","metadata":"ipfs://Qm/c.json","supply":1e3}`,
			expected: &CreateContent{
				Metadata: "ipfs://Qm/c.json",
				Supply:   lo.ToPtr(int64(1000)),
			},
		},
		{
			name:     "addwl",
			raw:      `{"p":"dot-721","op":"addwl","id":"100-2","data":["` + alice + `","` + bob + `","` + alice + `"]}`,
			expected: &AddwlContent{ID: "100-2", Data: []string{alice, bob, alice}},
		},
		{
			name:     "mint",
			raw:      `{"p":"dot-721","op":"mint","id":"100-2"}`,
			expected: &MintContent{ID: "100-2"},
		},
		{
			name:     "mint_with_metadata",
			raw:      `{"p":"dot-721","op":"mint","id":"100-2","metadata":"http://example.com/1.json"}`,
			expected: &MintContent{ID: "100-2", Metadata: lo.ToPtr("http://example.com/1.json")},
		},
		{
			name:     "approve",
			raw:      `{"p":"dot-721","op":"approve","id":"100-2","token_id":0,"approved":"` + bob + `"}`,
			expected: &ApproveContent{ID: "100-2", TokenID: 0, Approved: bob},
		},
		{
			name:     "send",
			raw:      `{"p":"dot-721","op":"send","id":"100-2","token_id":7,"recipient":"` + bob + `"}`,
			expected: &SendContent{ID: "100-2", TokenID: 7, Recipient: bob},
		},
		{
			name:     "burn",
			raw:      `{"p":"dot-721","op":"burn","id":"100-2","token_id":3}`,
			expected: &BurnContent{ID: "100-2", TokenID: 3},
		},
		{
			name:     "unknown_fields_are_ignored",
			raw:      `{"p":"dot-721","op":"burn","id":"100-2","token_id":3,"memo":null,"extra":{"a":1}}`,
			expected: &BurnContent{ID: "100-2", TokenID: 3},
		},
		{
			name:     "case_insensitive_discriminators",
			raw:      `{"p":"DOT-721","op":"Mint","id":"100-2"}`,
			expected: &MintContent{ID: "100-2"},
		},
		{
			name: "case_insensitive_mode",
			raw:  `{"p":"dot-721","op":"CREATE","metadata":"ipfs://Qm/c.json","mint_settings":{"mode":"Creator"}}`,
			expected: &CreateContent{
				Metadata:     "ipfs://Qm/c.json",
				MintSettings: &MintSettings{Mode: lo.ToPtr(MintModeCreator)},
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			content, err := parser.Parse(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, content)
			assert.Equal(t, tc.expected.Operation(), content.Operation())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	parser := NewParser(0)

	testcases := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"not_json", `hello world`, ErrInvalidPayload},
		{"truncated_json", `{"p":"dot-721","op":"mint"`, ErrInvalidPayload},
		{"json_array", `[{"p":"dot-721"}]`, ErrInvalidPayload},
		{"missing_p", `{"op":"mint","id":"1-1"}`, ErrMissingField},
		{"wrong_p", `{"p":"dot-20","op":"mint","id":"1-1"}`, ErrInvalidProtocol},
		{"missing_op", `{"p":"dot-721","id":"1-1"}`, ErrMissingField},
		{"unknown_op", `{"p":"dot-721","op":"transfer","id":"1-1"}`, ErrInvalidOperation},
		{"op_not_string", `{"p":"dot-721","op":1}`, ErrInvalidType},
		{"create_missing_metadata", `{"p":"dot-721","op":"create"}`, ErrMissingField},
		{"create_bad_scheme", `{"p":"dot-721","op":"create","metadata":"ftp://example.com/c.json"}`, ErrInvalidURI},
		{"create_relative_uri", `{"p":"dot-721","op":"create","metadata":"c.json"}`, ErrInvalidURI},
		{"create_null_issuer", `{"p":"dot-721","op":"create","metadata":"ipfs://Qm/c.json","issuer":null}`, ErrNullField},
		{"create_issuer_wrong_network", `{"p":"dot-721","op":"create","metadata":"ipfs://Qm/c.json","issuer":"` + aliceSubstrate + `"}`, ErrInvalidAddress},
		{"create_fractional_supply", `{"p":"dot-721","op":"create","metadata":"ipfs://Qm/c.json","supply":1.5}`, ErrInvalidInteger},
		{"create_string_supply", `{"p":"dot-721","op":"create","metadata":"ipfs://Qm/c.json","supply":"10"}`, ErrInvalidType},
		{"create_bad_mode", `{"p":"dot-721","op":"create","metadata":"ipfs://Qm/c.json","mint_settings":{"mode":"private"}}`, ErrInvalidMintMode},
		{"create_bad_price", `{"p":"dot-721","op":"create","metadata":"ipfs://Qm/c.json","mint_settings":{"price":"1.5"}}`, ErrInvalidIntString},
		{"create_numeric_price", `{"p":"dot-721","op":"create","metadata":"ipfs://Qm/c.json","mint_settings":{"price":100}}`, ErrInvalidType},
		{"create_null_start", `{"p":"dot-721","op":"create","metadata":"ipfs://Qm/c.json","mint_settings":{"start":null}}`, ErrNullField},
		{"create_settings_not_object", `{"p":"dot-721","op":"create","metadata":"ipfs://Qm/c.json","mint_settings":[1]}`, ErrInvalidType},
		{"addwl_empty", `{"p":"dot-721","op":"addwl","id":"1-1","data":[]}`, ErrEmptyWhitelist},
		{"addwl_not_array", `{"p":"dot-721","op":"addwl","id":"1-1","data":"` + alice + `"}`, ErrInvalidType},
		{"addwl_bad_address", `{"p":"dot-721","op":"addwl","id":"1-1","data":["` + alice + `","not-an-address"]}`, ErrInvalidAddress},
		{"addwl_null_item", `{"p":"dot-721","op":"addwl","id":"1-1","data":[null]}`, ErrInvalidType},
		{"mint_missing_id", `{"p":"dot-721","op":"mint"}`, ErrMissingField},
		{"mint_null_metadata", `{"p":"dot-721","op":"mint","id":"1-1","metadata":null}`, ErrNullField},
		{"approve_missing_approved", `{"p":"dot-721","op":"approve","id":"1-1","token_id":0}`, ErrMissingField},
		{"send_negative_token", `{"p":"dot-721","op":"send","id":"1-1","token_id":-1,"recipient":"` + bob + `"}`, ErrNegativeTokenID},
		{"send_lowercased_recipient", `{"p":"dot-721","op":"send","id":"1-1","token_id":1,"recipient":"14e5nqkap3oajcmzgzhud2rcptbeubscxkhgjku4hpnckvf3"}`, ErrInvalidAddress},
		{"burn_string_token", `{"p":"dot-721","op":"burn","id":"1-1","token_id":"1"}`, ErrInvalidType},
		{"burn_null_token", `{"p":"dot-721","op":"burn","id":"1-1","token_id":null}`, ErrNullField},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			content, err := parser.Parse(tc.raw)
			assert.Nil(t, content)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestParseNetworkPrefix(t *testing.T) {
	raw := `{"p":"dot-721","op":"burn","id":"1-1","token_id":0}`
	send := `{"p":"dot-721","op":"send","id":"1-1","token_id":0,"recipient":"` + aliceSubstrate + `"}`

	_, err := NewParser(42).Parse(raw)
	assert.NoError(t, err)

	_, err = NewParser(42).Parse(send)
	assert.NoError(t, err)

	_, err = NewParser(0).Parse(send)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestParseErrorKeepsCauseMessage(t *testing.T) {
	send := `{"p":"dot-721","op":"send","id":"1-1","token_id":0,"recipient":"` + aliceSubstrate + `"}`
	_, err := NewParser(0).Parse(send)
	require.ErrorIs(t, err, ErrInvalidAddress)
	assert.Contains(t, err.Error(), "recipient")
	assert.Contains(t, err.Error(), aliceSubstrate)

	_, err = NewParser(0).Parse(`{"p":"dot-721","op":"burn"`)
	require.ErrorIs(t, err, ErrInvalidPayload)
	assert.Contains(t, err.Error(), "can't unmarshal payload")
}

func TestValidateURI(t *testing.T) {
	for _, uri := range []string{
		"ipfs://QmHash/1.json",
		"IPFS://QmHash",
		"https://example.com/a.json",
		"http://127.0.0.1:8080/a",
	} {
		assert.NoError(t, ValidateURI(uri), uri)
	}
	for _, uri := range []string{
		"",
		"example.com/a.json",
		"/a.json",
		"ftp://example.com/a",
		"https://",
		"data:application/json,{}",
		"://missing-scheme",
	} {
		assert.ErrorIs(t, ValidateURI(uri), ErrInvalidURI, uri)
	}
}
