package assistant

// FieldKind tags the value shape expected for a booking field.
type FieldKind string

const (
	KindNumber  FieldKind = "number"
	KindBoolean FieldKind = "boolean"
	KindEnum    FieldKind = "enum"
	KindMonth   FieldKind = "month"
	KindDate    FieldKind = "date"
)

// FieldSpec describes one required booking field: its wire name, expected
// value kind and the human-readable label used in prompts.
type FieldSpec struct {
	Name  string
	Kind  FieldKind
	Label string
}

// Catalog is the fixed, ordered set of fields a booking draft must carry
// before it may be persisted. The order is reused verbatim for
// user-facing prompts. Fixed at process start, never mutated.
var Catalog = []FieldSpec{
	{Name: "hotel", Kind: KindEnum, Label: "Hotel (Resort Hotel or City Hotel)"},
	{Name: "lead_time", Kind: KindNumber, Label: "Lead time in days"},
	{Name: "arrival_date_year", Kind: KindNumber, Label: "Arrival year"},
	{Name: "arrival_date_month", Kind: KindMonth, Label: "Arrival month"},
	{Name: "arrival_date_week_number", Kind: KindNumber, Label: "Arrival week number"},
	{Name: "arrival_date_day_of_month", Kind: KindNumber, Label: "Arrival day of month"},
	{Name: "stays_in_weekend_nights", Kind: KindNumber, Label: "Weekend nights"},
	{Name: "stays_in_week_nights", Kind: KindNumber, Label: "Week nights"},
	{Name: "adults", Kind: KindNumber, Label: "Number of adults"},
	{Name: "children", Kind: KindNumber, Label: "Number of children"},
	{Name: "babies", Kind: KindNumber, Label: "Number of babies"},
	{Name: "meal", Kind: KindEnum, Label: "Meal plan"},
	{Name: "country", Kind: KindEnum, Label: "Country code"},
	{Name: "market_segment", Kind: KindEnum, Label: "Market segment"},
	{Name: "is_repeated_guest", Kind: KindBoolean, Label: "Repeated guest"},
	{Name: "reserved_room_type", Kind: KindEnum, Label: "Reserved room type (A-H)"},
	{Name: "customer_type", Kind: KindEnum, Label: "Customer type"},
	{Name: "adr", Kind: KindNumber, Label: "Average daily rate"},
	{Name: "required_car_parking_spaces", Kind: KindNumber, Label: "Required parking spaces"},
	{Name: "total_of_special_requests", Kind: KindNumber, Label: "Number of special requests"},
	{Name: "reservation_status", Kind: KindEnum, Label: "Reservation status"},
	{Name: "reservation_status_date", Kind: KindDate, Label: "Reservation status date (YYYY-MM-DD)"},
}

// FieldByName looks up a catalog entry by its wire name.
func FieldByName(name string) (FieldSpec, bool) {
	for _, spec := range Catalog {
		if spec.Name == name {
			return spec, true
		}
	}
	return FieldSpec{}, false
}
