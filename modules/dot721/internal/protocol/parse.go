package protocol

import (
	"bytes"
	"encoding/json"
	"math/big"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/pkg/ss58"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPayload   = errors.New("invalid payload: must be a json object")
	ErrInvalidProtocol  = errors.New("invalid protocol: must be 'dot-721'")
	ErrInvalidOperation = errors.New("invalid operation for dot-721: must be one of 'create', 'addwl', 'mint', 'approve', 'send' or 'burn'")
	ErrMissingField     = errors.New("missing required field")
	ErrNullField        = errors.New("field must not be null")
	ErrInvalidType      = errors.New("invalid field type")
	ErrInvalidInteger   = errors.New("invalid integer")
	ErrInvalidIntString = errors.New("invalid integer string")
	ErrInvalidAddress   = errors.New("invalid ss58 address")
	ErrInvalidURI       = errors.New("invalid uri: scheme must be http, https or ipfs")
	ErrInvalidMintMode  = errors.New("invalid mint mode: must be one of 'public', 'whitelist' or 'creator'")
	ErrNegativeTokenID  = errors.New("invalid token_id: must not be negative")
	ErrEmptyWhitelist   = errors.New("invalid data: must contain at least one address")
)

const errFieldNotObject = "field %q must be an object"

// Parser validates raw remarks against the dot-721 payload schemas.
type Parser struct {
	ss58Prefix uint16
}

// NewParser creates a parser that accepts addresses of the given SS58 network prefix.
func NewParser(ss58Prefix uint16) *Parser {
	return &Parser{ss58Prefix: ss58Prefix}
}

// Parse parses and validates a raw remark. The `p`, `op` and `mode` values are case-insensitive,
// every other value is kept as is.
func (p *Parser) Parse(raw string) (Content, error) {
	obj, err := parseObject([]byte(raw))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	protocol, _, err := obj.String("p", true)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if strings.ToLower(protocol) != Protocol {
		return nil, errors.WithStack(ErrInvalidProtocol)
	}

	op, _, err := obj.String("op", true)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	switch Operation(strings.ToLower(op)) {
	case OperationCreate:
		return p.parseCreate(obj)
	case OperationAddwl:
		return p.parseAddwl(obj)
	case OperationMint:
		return p.parseMint(obj)
	case OperationApprove:
		return p.parseApprove(obj)
	case OperationSend:
		return p.parseSend(obj)
	case OperationBurn:
		return p.parseBurn(obj)
	default:
		return nil, errors.WithStack(ErrInvalidOperation)
	}
}

func (p *Parser) parseCreate(obj object) (*CreateContent, error) {
	metadata, _, err := obj.URI("metadata", true)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	content := &CreateContent{Metadata: metadata}

	if issuer, ok, err := p.address(obj, "issuer", false); err != nil {
		return nil, errors.WithStack(err)
	} else if ok {
		content.Issuer = &issuer
	}
	if baseURI, ok, err := obj.URI("base_uri", false); err != nil {
		return nil, errors.WithStack(err)
	} else if ok {
		content.BaseURI = &baseURI
	}
	if supply, ok, err := obj.Integer("supply", false); err != nil {
		return nil, errors.WithStack(err)
	} else if ok {
		content.Supply = &supply
	}

	settings, ok, err := obj.Object("mint_settings", false)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if ok {
		content.MintSettings, err = parseMintSettings(settings)
		if err != nil {
			return nil, errors.Wrap(err, "invalid mint_settings")
		}
	}
	return content, nil
}

func parseMintSettings(obj object) (*MintSettings, error) {
	settings := &MintSettings{}

	if mode, ok, err := obj.String("mode", false); err != nil {
		return nil, errors.WithStack(err)
	} else if ok {
		mode := MintMode(strings.ToLower(mode))
		if !mode.IsValid() {
			return nil, errors.WithStack(ErrInvalidMintMode)
		}
		settings.Mode = &mode
	}
	for key, dst := range map[string]**int64{
		"start": &settings.Start,
		"end":   &settings.End,
		"limit": &settings.Limit,
	} {
		value, ok, err := obj.Integer(key, false)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if ok {
			*dst = &value
		}
	}
	if price, ok, err := obj.IntString("price", false); err != nil {
		return nil, errors.WithStack(err)
	} else if ok {
		settings.Price = &price
	}
	return settings, nil
}

func (p *Parser) parseAddwl(obj object) (*AddwlContent, error) {
	id, _, err := obj.String("id", true)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	raw, _, err := obj.lookup("data", true)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrap(ErrInvalidType, "field \"data\" must be an array")
	}
	if len(items) == 0 {
		return nil, errors.WithStack(ErrEmptyWhitelist)
	}

	content := &AddwlContent{ID: id, Data: make([]string, 0, len(items))}
	for i, item := range items {
		var address string
		if err := json.Unmarshal(item, &address); err != nil || isNull(item) {
			return nil, errors.Wrapf(ErrInvalidType, "data[%d] must be a string", i)
		}
		if err := ss58.Validate(address, p.ss58Prefix); err != nil {
			return nil, errors.Wrapf(ErrInvalidAddress, "invalid data[%d] %q: %v", i, address, err)
		}
		content.Data = append(content.Data, address)
	}
	return content, nil
}

func (p *Parser) parseMint(obj object) (*MintContent, error) {
	id, _, err := obj.String("id", true)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	content := &MintContent{ID: id}
	if metadata, ok, err := obj.URI("metadata", false); err != nil {
		return nil, errors.WithStack(err)
	} else if ok {
		content.Metadata = &metadata
	}
	return content, nil
}

func (p *Parser) parseApprove(obj object) (*ApproveContent, error) {
	id, tokenID, err := tokenRef(obj)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	approved, _, err := p.address(obj, "approved", true)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &ApproveContent{ID: id, TokenID: tokenID, Approved: approved}, nil
}

func (p *Parser) parseSend(obj object) (*SendContent, error) {
	id, tokenID, err := tokenRef(obj)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	recipient, _, err := p.address(obj, "recipient", true)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &SendContent{ID: id, TokenID: tokenID, Recipient: recipient}, nil
}

func (p *Parser) parseBurn(obj object) (*BurnContent, error) {
	id, tokenID, err := tokenRef(obj)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &BurnContent{ID: id, TokenID: tokenID}, nil
}

func tokenRef(obj object) (string, int64, error) {
	id, _, err := obj.String("id", true)
	if err != nil {
		return "", 0, errors.WithStack(err)
	}
	tokenID, _, err := obj.Integer("token_id", true)
	if err != nil {
		return "", 0, errors.WithStack(err)
	}
	if tokenID < 0 {
		return "", 0, errors.WithStack(ErrNegativeTokenID)
	}
	return id, tokenID, nil
}

func (p *Parser) address(obj object, key string, required bool) (string, bool, error) {
	address, ok, err := obj.String(key, required)
	if err != nil || !ok {
		return "", ok, errors.WithStack(err)
	}
	if err := ss58.Validate(address, p.ss58Prefix); err != nil {
		return "", false, errors.Wrapf(ErrInvalidAddress, "invalid %s %q: %v", key, address, err)
	}
	return address, true, nil
}

// ValidateURI checks that s is an absolute http, https or ipfs uri.
func ValidateURI(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return errors.Wrapf(ErrInvalidURI, "can't parse uri %q: %v", s, err)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return errors.Wrapf(ErrInvalidURI, "missing host in uri %q", s)
		}
		return nil
	case "ipfs":
		return nil
	default:
		return errors.Wrapf(ErrInvalidURI, "uri %q", s)
	}
}

// object is a json object whose values are decoded on access.
type object map[string]json.RawMessage

func parseObject(raw []byte) (object, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, errors.WithStack(ErrInvalidPayload)
	}
	var obj object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, errors.Wrapf(ErrInvalidPayload, "can't unmarshal payload: %v", err)
	}
	return obj, nil
}

// lookup returns the raw value of key. A present value must not be null.
func (o object) lookup(key string, required bool) (json.RawMessage, bool, error) {
	raw, ok := o[key]
	if !ok {
		if required {
			return nil, false, errors.Wrapf(ErrMissingField, "field %q", key)
		}
		return nil, false, nil
	}
	if isNull(raw) {
		return nil, false, errors.Wrapf(ErrNullField, "field %q", key)
	}
	return raw, true, nil
}

func (o object) String(key string, required bool) (string, bool, error) {
	raw, ok, err := o.lookup(key, required)
	if err != nil || !ok {
		return "", ok, errors.WithStack(err)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false, errors.Wrapf(ErrInvalidType, "field %q must be a string", key)
	}
	return s, true, nil
}

// Integer decodes a json number with an integral value.
func (o object) Integer(key string, required bool) (int64, bool, error) {
	raw, ok, err := o.lookup(key, required)
	if err != nil || !ok {
		return 0, ok, errors.WithStack(err)
	}
	if raw[0] != '-' && (raw[0] < '0' || raw[0] > '9') {
		return 0, false, errors.Wrapf(ErrInvalidType, "field %q must be a number", key)
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return 0, false, errors.Wrapf(ErrInvalidType, "field %q must be a number", key)
	}
	if !d.IsInteger() || !d.BigInt().IsInt64() {
		return 0, false, errors.Wrapf(ErrInvalidInteger, "field %q: %s", key, raw)
	}
	return d.IntPart(), true, nil
}

// IntString decodes a string holding an arbitrary precision base-10 integer.
func (o object) IntString(key string, required bool) (decimal.Decimal, bool, error) {
	s, ok, err := o.String(key, required)
	if err != nil || !ok {
		return decimal.Decimal{}, ok, errors.WithStack(err)
	}
	n, valid := new(big.Int).SetString(s, 10)
	if !valid {
		return decimal.Decimal{}, false, errors.Wrapf(ErrInvalidIntString, "field %q: %q", key, s)
	}
	return decimal.NewFromBigInt(n, 0), true, nil
}

func (o object) URI(key string, required bool) (string, bool, error) {
	s, ok, err := o.String(key, required)
	if err != nil || !ok {
		return "", ok, errors.WithStack(err)
	}
	if err := ValidateURI(s); err != nil {
		return "", false, errors.Wrapf(err, "field %q", key)
	}
	return s, true, nil
}

func (o object) Object(key string, required bool) (object, bool, error) {
	raw, ok, err := o.lookup(key, required)
	if err != nil || !ok {
		return nil, ok, errors.WithStack(err)
	}
	if raw[0] != '{' {
		return nil, false, errors.Wrapf(ErrInvalidType, errFieldNotObject, key)
	}
	var obj object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false, errors.Wrapf(ErrInvalidType, errFieldNotObject, key)
	}
	return obj, true, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
