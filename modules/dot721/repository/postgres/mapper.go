package postgres

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/modules/dot721/datagateway"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/entity"
	"github.com/gaze-network/dot721-indexer/modules/dot721/repository/postgres/gen"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

func numericFromDecimal(src *decimal.Decimal) pgtype.Numeric {
	if src == nil {
		return pgtype.Numeric{}
	}
	return pgtype.Numeric{
		Int:   src.Coefficient(),
		Exp:   src.Exponent(),
		Valid: true,
	}
}

func decimalFromNumeric(src pgtype.Numeric) (*decimal.Decimal, error) {
	if !src.Valid {
		return nil, nil
	}
	if src.NaN || src.InfinityModifier != pgtype.Finite || src.Int == nil {
		return nil, errors.New("numeric is not a finite number")
	}
	return lo.ToPtr(decimal.NewFromBigInt(src.Int, src.Exp)), nil
}

func textFromPtr(src *string) pgtype.Text {
	if src == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *src, Valid: true}
}

func ptrFromText(src pgtype.Text) *string {
	if !src.Valid {
		return nil
	}
	return lo.ToPtr(src.String)
}

func int8FromPtr(src *int64) pgtype.Int8 {
	if src == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *src, Valid: true}
}

func ptrFromInt8(src pgtype.Int8) *int64 {
	if !src.Valid {
		return nil
	}
	return lo.ToPtr(src.Int64)
}

func timestampFromTime(src time.Time) pgtype.Timestamp {
	return pgtype.Timestamp{Time: src.UTC(), Valid: true}
}

func mapCollectionModelToType(src gen.Dot721Collection) (entity.Collection, error) {
	price, err := decimalFromNumeric(src.MsPrice)
	if err != nil {
		return entity.Collection{}, errors.Wrap(err, "failed to parse mint price")
	}
	return entity.Collection{
		CollectionID: src.CollectionID,
		Name:         src.Name,
		Description:  ptrFromText(src.Description),
		Image:        src.Image,
		Issuer:       src.Issuer,
		BaseURI:      ptrFromText(src.BaseUri),
		Supply:       ptrFromInt8(src.Supply),
		MintSettings: entity.MintSettings{
			Mode:  entity.MintMode(src.MsMode.String),
			Start: ptrFromInt8(src.MsStart),
			End:   ptrFromInt8(src.MsEnd),
			Price: price,
			Limit: ptrFromInt8(src.MsLimit),
		},
		CreateTime: src.CreateTime.Time.UTC(),
		UpdateTime: src.UpdateTime.Time.UTC(),
	}, nil
}

func mapCollectionTypeToParams(src entity.Collection) gen.CreateCollectionParams {
	return gen.CreateCollectionParams{
		CollectionID: src.CollectionID,
		Name:         src.Name,
		Description:  textFromPtr(src.Description),
		Image:        src.Image,
		Issuer:       src.Issuer,
		BaseUri:      textFromPtr(src.BaseURI),
		Supply:       int8FromPtr(src.Supply),
		MsMode:       pgtype.Text{String: string(src.MintSettings.Mode), Valid: src.MintSettings.Mode != ""},
		MsStart:      int8FromPtr(src.MintSettings.Start),
		MsEnd:        int8FromPtr(src.MintSettings.End),
		MsPrice:      numericFromDecimal(src.MintSettings.Price),
		MsLimit:      int8FromPtr(src.MintSettings.Limit),
		CreateTime:   timestampFromTime(src.CreateTime),
		UpdateTime:   timestampFromTime(src.UpdateTime),
	}
}

func mapTokenModelToType(src gen.Dot721Token) (entity.Token, error) {
	var attributes []entity.Attribute
	if len(src.Attributes) > 0 {
		if err := json.Unmarshal(src.Attributes, &attributes); err != nil {
			return entity.Token{}, errors.Wrap(err, "failed to unmarshal token attributes")
		}
	}
	return entity.Token{
		CollectionID: src.CollectionID,
		TokenID:      src.TokenID,
		Name:         src.Name,
		Description:  ptrFromText(src.Description),
		Image:        src.Image,
		Attributes:   attributes,
		Owner:        src.Owner,
		Status:       entity.TokenStatus(src.Status),
		CreateTime:   src.CreateTime.Time.UTC(),
		UpdateTime:   src.UpdateTime.Time.UTC(),
	}, nil
}

func mapTokenTypeToParams(src entity.Token) (gen.CreateTokenParams, error) {
	var attributes []byte
	if src.Attributes != nil {
		var err error
		attributes, err = json.Marshal(src.Attributes)
		if err != nil {
			return gen.CreateTokenParams{}, errors.Wrap(err, "failed to marshal token attributes")
		}
	}
	return gen.CreateTokenParams{
		CollectionID: src.CollectionID,
		TokenID:      src.TokenID,
		Name:         src.Name,
		Description:  textFromPtr(src.Description),
		Image:        src.Image,
		Attributes:   attributes,
		Owner:        src.Owner,
		Status:       string(src.Status),
		CreateTime:   timestampFromTime(src.CreateTime),
		UpdateTime:   timestampFromTime(src.UpdateTime),
	}, nil
}

func mapApprovalModelToType(src gen.Dot721Approval) entity.Approval {
	return entity.Approval{
		ID:           src.ID,
		CollectionID: src.CollectionID,
		TokenID:      src.TokenID,
		Approved:     src.Approved,
		Status:       entity.ApprovalStatus(src.Status),
		CreateTime:   src.CreateTime.Time.UTC(),
		UpdateTime:   src.UpdateTime.Time.UTC(),
	}
}

func mapWhitelistEntriesTypeToParams(src []entity.WhitelistEntry) []gen.CreateWhitelistEntriesParams {
	return lo.Map(src, func(item entity.WhitelistEntry, _ int) gen.CreateWhitelistEntriesParams {
		return gen.CreateWhitelistEntriesParams{
			CollectionID: item.CollectionID,
			Address:      item.Address,
			CreateTime:   timestampFromTime(item.CreateTime),
		}
	})
}

func mapTransactionTypeToParams(src entity.Transaction) gen.CreateTransactionParams {
	var failReason pgtype.Text
	if src.FailReason != nil {
		failReason = pgtype.Text{String: string(*src.FailReason), Valid: true}
	}
	return gen.CreateTransactionParams{
		Op:             src.Op,
		Content:        src.Content,
		CollectionID:   src.CollectionID,
		TokenID:        int8FromPtr(src.TokenID),
		BlockNumber:    src.BlockNumber,
		ExtrinsicHash:  src.ExtrinsicHash,
		ExtrinsicIndex: src.ExtrinsicIndex,
		Sender:         src.Sender,
		Status:         string(src.Status),
		FailReason:     failReason,
		CreateTime:     timestampFromTime(src.CreateTime),
	}
}

func mapStatsModelToType(src gen.GetStatsRow) datagateway.Stats {
	return datagateway.Stats{
		Collections:  src.Collections,
		Tokens:       src.Tokens,
		Transactions: src.Transactions,
	}
}
