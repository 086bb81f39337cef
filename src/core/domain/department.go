package domain

import "fmt"

// DepartmentRecord is a departments row.
type DepartmentRecord struct {
	ID   int64
	Name string
}

// Department is an organizational unit employees belong to.
type Department struct {
	id   int64
	name string
}

// NewDepartment builds a transient department.
func NewDepartment(name string) (*Department, error) {
	d := &Department{}
	if err := d.SetName(name); err != nil {
		return nil, err
	}
	return d, nil
}

// RestoreDepartment builds a department from a stored row without validation.
func RestoreDepartment(rec DepartmentRecord) *Department {
	return &Department{id: rec.ID, name: rec.Name}
}

func (d *Department) ID() int64         { return d.id }
func (d *Department) IsPersisted() bool { return d.id != 0 }
func (d *Department) Name() string      { return d.name }

// SetName assigns a trimmed, non-empty name.
func (d *Department) SetName(name string) error {
	v, err := requireText("name", name)
	if err != nil {
		return err
	}
	d.name = v
	return nil
}

// Record returns the current column values.
func (d *Department) Record() DepartmentRecord {
	return DepartmentRecord{ID: d.id, Name: d.name}
}

// Refresh overwrites the columns with values read from the store.
func (d *Department) Refresh(rec DepartmentRecord) {
	d.name = rec.Name
}

// MarkPersisted records the id the store assigned.
func (d *Department) MarkPersisted(id int64) { d.id = id }

// MarkDeleted clears the id after the row has been removed.
func (d *Department) MarkDeleted() { d.id = 0 }

func (d *Department) String() string {
	return fmt.Sprintf("<Department id=%d name=%q>", d.id, d.name)
}
