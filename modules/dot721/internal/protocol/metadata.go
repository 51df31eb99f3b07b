package protocol

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

type CollectionMetadata struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Image       string  `json:"image"`
}

type TokenMetadata struct {
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes,omitempty"`
}

type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// ParseCollectionMetadata validates a metadata document of a collection.
func ParseCollectionMetadata(doc json.RawMessage) (*CollectionMetadata, error) {
	obj, err := parseObject(doc)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	name, description, image, err := parseDisplay(obj)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &CollectionMetadata{
		Name:        name,
		Description: description,
		Image:       image,
	}, nil
}

// ParseTokenMetadata validates a metadata document of a token.
func ParseTokenMetadata(doc json.RawMessage) (*TokenMetadata, error) {
	obj, err := parseObject(doc)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	name, description, image, err := parseDisplay(obj)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	metadata := &TokenMetadata{
		Name:        name,
		Description: description,
		Image:       image,
	}

	raw, ok, err := obj.lookup("attributes", false)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !ok {
		return metadata, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrap(ErrInvalidType, "field \"attributes\" must be an array")
	}
	metadata.Attributes = make([]Attribute, 0, len(items))
	for i, item := range items {
		attr, err := parseObject(item)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidType, "attributes[%d] must be an object", i)
		}
		traitType, _, err := attr.String("trait_type", true)
		if err != nil {
			return nil, errors.Wrapf(err, "attributes[%d]", i)
		}
		value, _, err := attr.String("value", true)
		if err != nil {
			return nil, errors.Wrapf(err, "attributes[%d]", i)
		}
		metadata.Attributes = append(metadata.Attributes, Attribute{TraitType: traitType, Value: value})
	}
	return metadata, nil
}

func parseDisplay(obj object) (name string, description *string, image string, err error) {
	name, _, err = obj.String("name", true)
	if err != nil {
		return "", nil, "", errors.WithStack(err)
	}
	if value, ok, err := obj.String("description", false); err != nil {
		return "", nil, "", errors.WithStack(err)
	} else if ok {
		description = &value
	}
	image, _, err = obj.URI("image", true)
	if err != nil {
		return "", nil, "", errors.WithStack(err)
	}
	return name, description, image, nil
}
