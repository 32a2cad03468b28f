package domain

// EditTaskDescriptor carries the fields an edit request wants to change.
// Unset fields leave the task untouched.
type EditTaskDescriptor struct {
	name        *Name
	assignment  *Assignment
	description *Description
	isDone      *bool
	date        *Date
}

// Clone returns an independent copy of d.
func (d EditTaskDescriptor) Clone() EditTaskDescriptor {
	var c EditTaskDescriptor
	if d.name != nil {
		c.SetName(*d.name)
	}
	if d.assignment != nil {
		c.SetAssignment(*d.assignment)
	}
	if d.description != nil {
		c.SetDescription(*d.description)
	}
	if d.isDone != nil {
		c.SetIsDone(*d.isDone)
	}
	if d.date != nil {
		c.SetDate(*d.date)
	}
	return c
}

func (d *EditTaskDescriptor) SetName(name Name) { d.name = &name }

func (d *EditTaskDescriptor) SetAssignment(a Assignment) { d.assignment = &a }

func (d *EditTaskDescriptor) SetDescription(desc Description) { d.description = &desc }

func (d *EditTaskDescriptor) SetIsDone(done bool) { d.isDone = &done }

func (d *EditTaskDescriptor) SetDate(date Date) { d.date = &date }

func (d EditTaskDescriptor) Name() (Name, bool) {
	if d.name == nil {
		return "", false
	}
	return *d.name, true
}

func (d EditTaskDescriptor) Assignment() (Assignment, bool) {
	if d.assignment == nil {
		return "", false
	}
	return *d.assignment, true
}

func (d EditTaskDescriptor) Description() (Description, bool) {
	if d.description == nil {
		return "", false
	}
	return *d.description, true
}

func (d EditTaskDescriptor) IsDone() (bool, bool) {
	if d.isDone == nil {
		return false, false
	}
	return *d.isDone, true
}

func (d EditTaskDescriptor) Date() (Date, bool) {
	if d.date == nil {
		return Date{}, false
	}
	return *d.date, true
}

func (d EditTaskDescriptor) IsAnyFieldEdited() bool {
	return d.name != nil || d.assignment != nil || d.description != nil || d.isDone != nil || d.date != nil
}

// Equal compares the set fields and their values.
func (d EditTaskDescriptor) Equal(other EditTaskDescriptor) bool {
	return equalPtr(d.name, other.name) &&
		equalPtr(d.assignment, other.assignment) &&
		equalPtr(d.description, other.description) &&
		equalPtr(d.isDone, other.isDone) &&
		equalPtr(d.date, other.date)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
