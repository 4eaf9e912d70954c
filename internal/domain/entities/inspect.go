package entities

// FieldInfo pairs a recognized field with its catalog target, for read-only
// display without mutation.
type FieldInfo struct {
	Field
	Target   string // catalog target value; empty when the field is unmapped
	Outdated bool   // current value is older than the target
}

// DescriptorInfo is the result of inspecting a descriptor: the recognized
// fields and their current values. Inspection never writes.
type DescriptorInfo struct {
	Path   string
	Format string
	Fields []FieldInfo
}

// OutdatedCount returns how many recognized fields are behind their target.
func (d *DescriptorInfo) OutdatedCount() int {
	count := 0
	for _, f := range d.Fields {
		if f.Outdated {
			count++
		}
	}
	return count
}
