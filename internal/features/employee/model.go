package employee

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee links one person to their general and professional records.
type Employee struct {
	ID             primitive.ObjectID `bson:"_id"`
	GeneralID      string             `bson:"generalId"`
	ProfessionalID string             `bson:"professionalId"`
	IsDeleted      bool               `bson:"isDeleted"`
}

type Name struct {
	Title string `bson:"title"`
	First string `bson:"first"`
	Last  string `bson:"last"`
}

type Phone struct {
	Code string `bson:"code"`
	Num  string `bson:"num"`
}

// General is the personal-information record of an employee.
type General struct {
	Name         *Name  `bson:"name"`
	EmpCode      any    `bson:"empCode"`
	Status       any    `bson:"status"`
	Gender       any    `bson:"gender"`
	PrimaryEmail any    `bson:"primaryEmail"`
	PanNum       any    `bson:"panNum"`
	PhoneNum     *Phone `bson:"phoneNum"`
}

// Professional is the employment record of an employee.
type Professional struct {
	JoiningDate     Date   `bson:"joiningDate"`
	Designation     any    `bson:"designation"`
	Department      any    `bson:"department"`
	Location        any    `bson:"location"`
	CtcAnnual       Amount `bson:"ctcAnnual"`
	LossOfPay       Amount `bson:"lossOfPay"`
	TaxPaid         Amount `bson:"taxPaid"`
	NetPay          Amount `bson:"netPay"`
	LeaveType       any    `bson:"leaveType"`
	LeaveAdjustment any    `bson:"leaveAdjustment"`
	LeaveBalance    any    `bson:"leaveBalance"`
	WorkWeek        any    `bson:"workWeek"`
}

// Record is one employee joined with its linked records. A linked record that could not
// be found is left as its zero value.
type Record struct {
	Employee     Employee
	General      General
	Professional Professional
}

// FullName is first and last name joined by a space and trimmed.
func (g General) FullName() string {
	if g.Name == nil {
		return ""
	}
	return strings.TrimSpace(g.Name.First + " " + g.Name.Last)
}

// Amount is a money field stored either as a number or as a numeric string.
type Amount struct {
	Raw   any // stored value, nil when absent or null
	Value decimal.Decimal
	Valid bool // Raw is a readable number
}

// Number returns the value used by range filters. Absent and null amounts count as
// zero; ok is false when the stored value is not numeric.
func (a Amount) Number() (decimal.Decimal, bool) {
	if a.Raw == nil {
		return decimal.Zero, true
	}
	return a.Value, a.Valid
}

func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*a = Amount{}
	rv := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.Null, bsontype.Undefined:
		return nil
	case bsontype.Double:
		f := rv.Double()
		a.Raw, a.Value, a.Valid = f, decimal.NewFromFloat(f), true
	case bsontype.Int32:
		n := rv.Int32()
		a.Raw, a.Value, a.Valid = n, decimal.NewFromInt32(n), true
	case bsontype.Int64:
		n := rv.Int64()
		a.Raw, a.Value, a.Valid = n, decimal.NewFromInt(n), true
	case bsontype.Decimal128:
		d := rv.Decimal128()
		a.Raw = d.String()
		a.Value, a.Valid = parseDecimal(d.String())
	case bsontype.String:
		s := rv.StringValue()
		a.Raw = s
		a.Value, a.Valid = parseDecimal(s)
	default:
		a.Raw = rv.String()
	}
	return nil
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

var dateLayouts = []string{"2006-01-02", time.RFC3339Nano, "2006-01-02T15:04:05"}

// Date is a calendar field stored either as a BSON date or as a date string.
type Date struct {
	Raw   any
	Time  time.Time
	Valid bool
}

func (d *Date) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*d = Date{}
	rv := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.Null, bsontype.Undefined:
		return nil
	case bsontype.DateTime:
		tm := rv.Time().UTC()
		d.Raw, d.Time, d.Valid = tm, tm, true
	case bsontype.String:
		s := rv.StringValue()
		d.Raw = s
		d.Time, d.Valid = ParseDate(s)
	default:
		d.Raw = rv.String()
	}
	return nil
}

// ParseDate reads a YYYY-MM-DD date or an RFC 3339 timestamp. Dates without a zone are UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
