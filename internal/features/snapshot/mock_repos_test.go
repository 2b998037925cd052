package snapshot

import (
	"context"
	"fmt"
	"sync"

	"go-hrms/internal/common/apperrors"
	"go-hrms/internal/database"
	"go-hrms/internal/features/audit"
	"go-hrms/internal/features/employee"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryEmployees struct {
	employees     []employee.Employee
	general       map[string]employee.General
	professionals map[string]employee.Professional
	failGeneral   error
}

func newMemoryEmployees() *memoryEmployees {
	return &memoryEmployees{
		general:       map[string]employee.General{},
		professionals: map[string]employee.Professional{},
	}
}

// add stores an employee with linked records; empCode doubles as the row identifier.
func (m *memoryEmployees) add(empCode string, prof employee.Professional, deleted bool) {
	gid := "g-" + empCode
	pid := "p-" + empCode
	m.employees = append(m.employees, employee.Employee{
		ID:             primitive.NewObjectID(),
		GeneralID:      gid,
		ProfessionalID: pid,
		IsDeleted:      deleted,
	})
	m.general[gid] = employee.General{
		Name:    &employee.Name{First: "Emp", Last: empCode},
		EmpCode: empCode,
		Status:  "Active",
	}
	m.professionals[pid] = prof
}

func (m *memoryEmployees) live() []employee.Employee {
	out := []employee.Employee{}
	for _, e := range m.employees {
		if !e.IsDeleted {
			out = append(out, e)
		}
	}
	return out
}

func (m *memoryEmployees) ListActive(_ context.Context, page database.Page) ([]employee.Employee, error) {
	live := m.live()
	start := int(page.Offset)
	if start > len(live) {
		start = len(live)
	}
	end := len(live)
	if page.Limit > 0 && start+int(page.Limit) < end {
		end = start + int(page.Limit)
	}
	return live[start:end], nil
}

func (m *memoryEmployees) CountActive(context.Context) (int64, error) {
	return int64(len(m.live())), nil
}

func (m *memoryEmployees) GetGeneral(_ context.Context, id string) (*employee.General, error) {
	if m.failGeneral != nil {
		return nil, m.failGeneral
	}
	g, ok := m.general[id]
	if !ok {
		return nil, apperrors.NotFound("general record %s not found", id)
	}
	return &g, nil
}

func (m *memoryEmployees) GetProfessional(_ context.Context, id string) (*employee.Professional, error) {
	p, ok := m.professionals[id]
	if !ok {
		return nil, apperrors.NotFound("professional record %s not found", id)
	}
	return &p, nil
}

type memoryTemplates struct {
	mu        sync.Mutex
	templates map[string]Template
	gets      int
}

func newMemoryTemplates(tmpls ...Template) *memoryTemplates {
	m := &memoryTemplates{templates: map[string]Template{}}
	for _, t := range tmpls {
		m.templates[t.ID] = t
	}
	return m
}

func (m *memoryTemplates) Get(_ context.Context, id string) (*Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	t, ok := m.templates[id]
	if !ok {
		return nil, apperrors.NotFound("Template not found")
	}
	return &t, nil
}

func (m *memoryTemplates) SetFlags(_ context.Context, id string, flags map[string]bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.templates[id]
	if !ok {
		return apperrors.NotFound("Template not found")
	}
	for k, v := range flags {
		switch k {
		case "name":
			t.Name = v
		case "emp_id":
			t.EmpID = v
		case "gross_salary":
			t.GrossSalary = v
		case "phone":
			t.Phone = v
		default:
			panic(fmt.Sprintf("memoryTemplates: flag %s not wired", k))
		}
	}
	m.templates[id] = t
	return nil
}

// memoryCache stores values by key without encoding.
type memoryCache struct {
	mu     sync.Mutex
	values map[string]Template
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string]Template{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	if ok {
		*dest.(*Template) = v
	}
	return ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = *value.(*Template)
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}

type nopAudit struct{}

func (nopAudit) LogChange(context.Context, audit.Action, string, string, map[string]audit.Change) {}
func (nopAudit) ListLogs(context.Context, audit.Filter, int, int) ([]audit.Log, error) {
	return nil, nil
}

func amount(v string) employee.Amount {
	d := decimal.RequireFromString(v)
	return employee.Amount{Raw: v, Value: d, Valid: true}
}

func allOn(id string) Template {
	return Template{
		ID: id, Name: true, EmpID: true, Status: true, JoiningDate: true, Designation: true,
		Department: true, Location: true, Gender: true, Email: true, Pan: true, GrossSalary: true,
		LossOfPay: true, TaxPaid: true, NetPay: true, Leave: true, LeaveAdjustment: true,
		LeaveBalance: true, WorkingPattern: true, Phone: true,
	}
}
