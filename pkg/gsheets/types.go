package gsheets

const (
	ValueRenderUnformatted = "UNFORMATTED_VALUE"
	DateTimeRenderSerial   = "SERIAL_NUMBER"
	ValueInputUserEntered  = "USER_ENTERED"
	MajorDimensionRows     = "ROWS"
)

// UpdateResult summarises a values.update call.
type UpdateResult struct {
	UpdatedRange string
	UpdatedRows  int
	UpdatedCells int
}

// TokenFile is where an OAuth desktop token is read from, relative to the
// working directory.
const TokenFile = "token.json"
