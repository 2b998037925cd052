package snapshot

// Fields is the canonical column order of an employee snapshot.
var Fields = []string{
	"name", "emp_id", "status", "joining_date", "designation", "department", "location",
	"gender", "email", "pan", "gross_salary", "lossOfPay", "taxPaid", "netPay", "leave",
	"leaveAdjustment", "leaveBalance", "workingPattern", "phone",
}

// Template selects which snapshot fields carry values. Disabled fields are still
// emitted, as null.
type Template struct {
	ID              string `json:"id" bson:"_id"`
	Name            bool   `json:"name" bson:"name"`
	EmpID           bool   `json:"emp_id" bson:"emp_id"`
	Status          bool   `json:"status" bson:"status"`
	JoiningDate     bool   `json:"joining_date" bson:"joining_date"`
	Designation     bool   `json:"designation" bson:"designation"`
	Department      bool   `json:"department" bson:"department"`
	Location        bool   `json:"location" bson:"location"`
	Gender          bool   `json:"gender" bson:"gender"`
	Email           bool   `json:"email" bson:"email"`
	Pan             bool   `json:"pan" bson:"pan"`
	GrossSalary     bool   `json:"gross_salary" bson:"gross_salary"`
	LossOfPay       bool   `json:"lossOfPay" bson:"lossOfPay"`
	TaxPaid         bool   `json:"taxPaid" bson:"taxPaid"`
	NetPay          bool   `json:"netPay" bson:"netPay"`
	Leave           bool   `json:"leave" bson:"leave"`
	LeaveAdjustment bool   `json:"leaveAdjustment" bson:"leaveAdjustment"`
	LeaveBalance    bool   `json:"leaveBalance" bson:"leaveBalance"`
	WorkingPattern  bool   `json:"workingPattern" bson:"workingPattern"`
	Phone           bool   `json:"phone" bson:"phone"`
}

// Enabled reports the flag for a field name from Fields.
func (t *Template) Enabled(field string) bool {
	switch field {
	case "name":
		return t.Name
	case "emp_id":
		return t.EmpID
	case "status":
		return t.Status
	case "joining_date":
		return t.JoiningDate
	case "designation":
		return t.Designation
	case "department":
		return t.Department
	case "location":
		return t.Location
	case "gender":
		return t.Gender
	case "email":
		return t.Email
	case "pan":
		return t.Pan
	case "gross_salary":
		return t.GrossSalary
	case "lossOfPay":
		return t.LossOfPay
	case "taxPaid":
		return t.TaxPaid
	case "netPay":
		return t.NetPay
	case "leave":
		return t.Leave
	case "leaveAdjustment":
		return t.LeaveAdjustment
	case "leaveBalance":
		return t.LeaveBalance
	case "workingPattern":
		return t.WorkingPattern
	case "phone":
		return t.Phone
	}
	return false
}

// IsField reports whether name is one of Fields.
func IsField(name string) bool {
	for _, f := range Fields {
		if f == name {
			return true
		}
	}
	return false
}
