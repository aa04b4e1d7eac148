package domain

import "strings"

// Item is a single physical good inside a quote.
type Item struct {
	categoryID  string
	brandID     string
	model       string
	description string
	attributes  []ItemAttribute
	files       []ItemFile
}

// NewItem validates and builds an Item. Attributes may be empty, files may
// not. The required-photo-subtype rule is checked later by NewQuote because
// it spans the whole file collection.
func NewItem(categoryID, brandID, model, description string, attributes []ItemAttribute, files []ItemFile) (Item, error) {
	categoryID = strings.TrimSpace(categoryID)
	brandID = strings.TrimSpace(brandID)
	model = strings.TrimSpace(model)

	if categoryID == "" {
		return Item{}, invalid("items.categoryId", "category id is required")
	}
	if brandID == "" {
		return Item{}, invalid("items.brandId", "brand id is required")
	}
	if model == "" {
		return Item{}, invalid("items.model", "model is required")
	}
	if len(files) == 0 {
		return Item{}, invalid("items.files", "at least one file is required")
	}

	return Item{
		categoryID:  categoryID,
		brandID:     brandID,
		model:       model,
		description: strings.TrimSpace(description),
		attributes:  attributes,
		files:       files,
	}, nil
}

func (i Item) CategoryID() string          { return i.categoryID }
func (i Item) BrandID() string             { return i.brandID }
func (i Item) Model() string               { return i.model }
func (i Item) Description() string         { return i.description }
func (i Item) Attributes() []ItemAttribute { return i.attributes }
func (i Item) Files() []ItemFile           { return i.files }

// missingPhotoSubtypes returns the required subtypes this item's files do not
// cover, in the canonical order of RequiredPhotoSubtypes.
func (i Item) missingPhotoSubtypes() []string {
	present := make(map[string]bool, len(i.files))
	for _, f := range i.files {
		present[strings.ToLower(f.metadata.photoSubtype)] = true
	}

	var missing []string
	for _, want := range RequiredPhotoSubtypes {
		if !present[strings.ToLower(want)] {
			missing = append(missing, want)
		}
	}
	return missing
}

// ItemAttribute links an item to one reference-data attribute and the
// selected values for it.
type ItemAttribute struct {
	attributeID string
	values      []ItemAttributeValue
}

// NewItemAttribute validates and builds an ItemAttribute. An attribute
// without selected values is meaningless and rejected.
func NewItemAttribute(attributeID string, values []ItemAttributeValue) (ItemAttribute, error) {
	attributeID = strings.TrimSpace(attributeID)
	if attributeID == "" {
		return ItemAttribute{}, invalid("items.attributes.id", "attribute id is required")
	}
	if len(values) == 0 {
		return ItemAttribute{}, invalid("items.attributes.values", "at least one value is required")
	}
	return ItemAttribute{attributeID: attributeID, values: values}, nil
}

func (a ItemAttribute) AttributeID() string          { return a.attributeID }
func (a ItemAttribute) Values() []ItemAttributeValue { return a.values }

// ItemAttributeValue is one selected option of an attribute.
type ItemAttributeValue struct {
	valueID string
	label   string
}

func NewItemAttributeValue(valueID, label string) (ItemAttributeValue, error) {
	valueID = strings.TrimSpace(valueID)
	label = strings.TrimSpace(label)
	if valueID == "" {
		return ItemAttributeValue{}, invalid("items.attributes.values.id", "value id is required")
	}
	if label == "" {
		return ItemAttributeValue{}, invalid("items.attributes.values.label", "value label is required")
	}
	return ItemAttributeValue{valueID: valueID, label: label}, nil
}

func (v ItemAttributeValue) ValueID() string { return v.valueID }
func (v ItemAttributeValue) Label() string   { return v.label }

// FileMetadata tags an uploaded file with the photo classification used by
// the required-photo invariant.
type FileMetadata struct {
	photoType    string
	photoSubtype string
	description  string
}

func NewFileMetadata(photoType, photoSubtype, description string) (FileMetadata, error) {
	photoType = strings.TrimSpace(photoType)
	photoSubtype = strings.TrimSpace(photoSubtype)
	if photoType == "" {
		return FileMetadata{}, invalid("items.files.metadata.photoType", "photo type is required")
	}
	if photoSubtype == "" {
		return FileMetadata{}, invalid("items.files.metadata.photoSubtype", "photo subtype is required")
	}
	return FileMetadata{
		photoType:    photoType,
		photoSubtype: photoSubtype,
		description:  strings.TrimSpace(description),
	}, nil
}

func (m FileMetadata) PhotoType() string    { return m.photoType }
func (m FileMetadata) PhotoSubtype() string { return m.photoSubtype }
func (m FileMetadata) Description() string  { return m.description }

// ItemFile references an already-uploaded binary by its storage coordinates.
type ItemFile struct {
	fileType   string
	provider   string
	externalID string
	location   string
	metadata   FileMetadata
}

func NewItemFile(fileType, provider, externalID, location string, metadata FileMetadata) (ItemFile, error) {
	fileType = strings.TrimSpace(fileType)
	provider = strings.TrimSpace(provider)
	externalID = strings.TrimSpace(externalID)
	location = strings.TrimSpace(location)

	if fileType == "" {
		return ItemFile{}, invalid("items.files.type", "file type is required")
	}
	if provider == "" {
		return ItemFile{}, invalid("items.files.provider", "file provider is required")
	}
	if externalID == "" {
		return ItemFile{}, invalid("items.files.externalId", "file external id is required")
	}
	if location == "" {
		return ItemFile{}, invalid("items.files.location", "file location is required")
	}

	return ItemFile{
		fileType:   fileType,
		provider:   provider,
		externalID: externalID,
		location:   location,
		metadata:   metadata,
	}, nil
}

func (f ItemFile) FileType() string       { return f.fileType }
func (f ItemFile) Provider() string       { return f.provider }
func (f ItemFile) ExternalID() string     { return f.externalID }
func (f ItemFile) Location() string       { return f.location }
func (f ItemFile) Metadata() FileMetadata { return f.metadata }
