// Package resources holds the resource descriptors that parametrize the
// generic screen: the built-in members, orders and products tables, plus any
// loaded from a YAML file.
package resources

import "github.com/dmitrijs2005/storeadmin/internal/client/models"

var zero = 0.0

func sortMode(dir string) models.ModeSpec {
	return models.ModeSpec{Name: "sort", Kind: models.ModeSort, Params: []models.ParamSpec{
		{Key: models.ParamSortBy, Wire: "by", Default: models.IDField},
		{Key: models.ParamSortDir, Wire: "dir", Default: dir},
	}}
}

func single(name, key, wire string) models.ModeSpec {
	return models.ModeSpec{Name: name, Kind: models.ModeSingle, Params: []models.ParamSpec{{Key: key, Wire: wire}}}
}

func bounds(name, lowWire, highWire string) models.ModeSpec {
	return models.ModeSpec{Name: name, Kind: models.ModeRange, Params: []models.ParamSpec{
		{Key: lowKey(name), Wire: lowWire},
		{Key: highKey(name), Wire: highWire},
	}}
}

func lowKey(mode string) string {
	if mode == "date-range" {
		return models.ParamStart
	}
	return models.ParamMin
}

func highKey(mode string) string {
	if mode == "date-range" {
		return models.ParamEnd
	}
	return models.ParamMax
}

var (
	modeAll        = models.ModeSpec{Name: "all", Kind: models.ModeAll}
	modeProjection = models.ModeSpec{Name: "projection", Kind: models.ModeProjection}
	sortByParam    = models.ParamSpec{Key: models.ParamSortBy}
	sortDirParam   = models.ParamSpec{Key: models.ParamSortDir}
)

// Members is the member directory screen.
func Members() models.Descriptor {
	return models.Descriptor{
		Resource: "members",
		Title:    "Members",
		Fields: []models.Field{
			{Name: "firstName", Label: "First name", Kind: models.FieldText, Required: true},
			{Name: "lastName", Label: "Last name", Kind: models.FieldText, Required: true},
			{Name: "email", Label: "Email", Kind: models.FieldEmail, Required: true},
			{Name: "phone", Label: "Phone", Kind: models.FieldText},
			{Name: "address", Label: "Address", Kind: models.FieldTextArea},
		},
		Columns: []models.Column{
			{Name: models.IDField, Label: "ID"},
			{Name: "name", Label: "Name", Fields: []string{"firstName", "lastName"}},
			{Name: "email", Label: "Email"},
			{Name: "phone", Label: "Phone"},
		},
		Modes: []models.ModeSpec{
			modeAll,
			modeProjection,
			single("name-search", models.ParamName, "name"),
			single("email-filter", models.ParamDomain, "domain"),
			single("phone-filter", models.ParamPrefix, "prefix"),
			sortMode(models.SortAsc),
			{Name: "search", Kind: models.ModeSearch, Params: []models.ParamSpec{
				{Key: models.ParamKeyword},
				{Key: models.ParamDomain},
				sortByParam,
				sortDirParam,
			}},
		},
		SearchFields: []string{"firstName", "lastName", "email"},
	}
}

// Orders is the order desk. Its sort mode defaults to newest first.
func Orders() models.Descriptor {
	statuses := []string{"pending", "completed", "cancelled"}
	return models.Descriptor{
		Resource: "orders",
		Title:    "Orders",
		Fields: []models.Field{
			{Name: "customerName", Label: "Customer name", Kind: models.FieldText, Required: true},
			{Name: "email", Label: "Email", Kind: models.FieldEmail, Required: true},
			{Name: "phone", Label: "Phone", Kind: models.FieldText},
			{Name: "totalAmount", Label: "Total amount", Kind: models.FieldNumber, Required: true, Min: &zero},
			{Name: "status", Label: "Status", Kind: models.FieldEnum, Required: true, Options: statuses, Default: "pending", EditOnly: true},
		},
		Columns: []models.Column{
			{Name: "orderNumber", Label: "Order No."},
			{Name: "customerName", Label: "Customer"},
			{Name: "email", Label: "Email"},
			{Name: "totalAmount", Label: "Total"},
			{Name: "status", Label: "Status"},
		},
		Modes: []models.ModeSpec{
			modeAll,
			modeProjection,
			single("status", models.ParamStatus, "status"),
			bounds("amount-range", "min", "max"),
			bounds("date-range", "start", "end"),
			sortMode(models.SortDesc),
			{Name: "search", Kind: models.ModeSearch, Params: []models.ParamSpec{
				{Key: models.ParamKeyword},
				{Key: models.ParamStatus},
				{Key: models.ParamMin, Wire: "minAmount"},
				{Key: models.ParamMax, Wire: "maxAmount"},
				{Key: models.ParamStart, Wire: "startDate"},
				{Key: models.ParamEnd, Wire: "endDate"},
				sortByParam,
				sortDirParam,
			}},
		},
		SearchFields:    []string{"customerName", "orderNumber"},
		CategoryField:   "status",
		CategoryOptions: statuses,
	}
}

// Products is the catalogue screen.
func Products() models.Descriptor {
	return models.Descriptor{
		Resource: "products",
		Title:    "Products",
		Fields: []models.Field{
			{Name: "name", Label: "Name", Kind: models.FieldText, Required: true},
			{Name: "description", Label: "Description", Kind: models.FieldTextArea},
			{Name: "price", Label: "Price", Kind: models.FieldNumber, Required: true, Min: &zero},
			{Name: "stock", Label: "Stock", Kind: models.FieldInteger, Min: &zero},
			{Name: "category", Label: "Category", Kind: models.FieldText},
			{Name: "imageUrl", Label: "Image URL", Kind: models.FieldText},
		},
		Columns: []models.Column{
			{Name: models.IDField, Label: "ID"},
			{Name: "name", Label: "Name"},
			{Name: "category", Label: "Category"},
			{Name: "price", Label: "Price"},
			{Name: "stock", Label: "Stock"},
		},
		Modes: []models.ModeSpec{
			modeAll,
			modeProjection,
			single("category", models.ParamCategory, "category"),
			single("stock-filter", models.ParamStock, "max"),
			bounds("price-range", "min", "max"),
			sortMode(models.SortAsc),
			{Name: "search", Kind: models.ModeSearch, Params: []models.ParamSpec{
				{Key: models.ParamKeyword},
				{Key: models.ParamCategory},
				{Key: models.ParamMin, Wire: "minPrice"},
				{Key: models.ParamMax, Wire: "maxPrice"},
				sortByParam,
				sortDirParam,
			}},
		},
		SearchFields: []string{"name", "category"},
	}
}
