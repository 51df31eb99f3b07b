package protocol

import "github.com/shopspring/decimal"

// Content is a validated dot-721 payload. It is one of *CreateContent, *AddwlContent,
// *MintContent, *ApproveContent, *SendContent or *BurnContent.
type Content interface {
	Operation() Operation
	content()
}

var (
	_ Content = (*CreateContent)(nil)
	_ Content = (*AddwlContent)(nil)
	_ Content = (*MintContent)(nil)
	_ Content = (*ApproveContent)(nil)
	_ Content = (*SendContent)(nil)
	_ Content = (*BurnContent)(nil)
)

type CreateContent struct {
	Metadata     string        `json:"metadata"`
	Issuer       *string       `json:"issuer,omitempty"`
	BaseURI      *string       `json:"base_uri,omitempty"`
	Supply       *int64        `json:"supply,omitempty"`
	MintSettings *MintSettings `json:"mint_settings,omitempty"`
}

type MintSettings struct {
	Mode  *MintMode        `json:"mode,omitempty"`
	Start *int64           `json:"start,omitempty"`
	End   *int64           `json:"end,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
	Limit *int64           `json:"limit,omitempty"`
}

type AddwlContent struct {
	ID   string   `json:"id"`
	Data []string `json:"data"`
}

type MintContent struct {
	ID       string  `json:"id"`
	Metadata *string `json:"metadata,omitempty"`
}

type ApproveContent struct {
	ID       string `json:"id"`
	TokenID  int64  `json:"token_id"`
	Approved string `json:"approved"`
}

type SendContent struct {
	ID        string `json:"id"`
	TokenID   int64  `json:"token_id"`
	Recipient string `json:"recipient"`
}

type BurnContent struct {
	ID      string `json:"id"`
	TokenID int64  `json:"token_id"`
}

func (*CreateContent) Operation() Operation  { return OperationCreate }
func (*AddwlContent) Operation() Operation   { return OperationAddwl }
func (*MintContent) Operation() Operation    { return OperationMint }
func (*ApproveContent) Operation() Operation { return OperationApprove }
func (*SendContent) Operation() Operation    { return OperationSend }
func (*BurnContent) Operation() Operation    { return OperationBurn }

func (*CreateContent) content()  {}
func (*AddwlContent) content()   {}
func (*MintContent) content()    {}
func (*ApproveContent) content() {}
func (*SendContent) content()    {}
func (*BurnContent) content()    {}
