package models

// Position defines a staff user's role
type Position string

const (
	PositionCoordenacao Position = "Coordenacao"
	PositionPreceptor   Position = "Preceptor"
)

// IsValid reports whether the position is one of the known roles
func (p Position) IsValid() bool {
	return p == PositionCoordenacao || p == PositionPreceptor
}

// Shift represents one of the three daily time blocks a schedule belongs to
type Shift string

const (
	ShiftMorning   Shift = "Manhã"
	ShiftAfternoon Shift = "Tarde"
	ShiftEvening   Shift = "Noite"
)

// IsValid reports whether the shift is one of the known blocks
func (s Shift) IsValid() bool {
	return s == ShiftMorning || s == ShiftAfternoon || s == ShiftEvening
}

// Semester represents the semester bracket a student is enrolled in
type Semester string

const (
	SemesterSeventh       Semester = "7 Semestre"
	SemesterEighth        Semester = "8 Semestre"
	SemesterSeventhEighth Semester = "7/8 Semestre"
)

// IsValid reports whether the semester is one of the known brackets
func (s Semester) IsValid() bool {
	return s == SemesterSeventh || s == SemesterEighth || s == SemesterSeventhEighth
}

// Justification enumerates the accepted reasons for a replacement session
type Justification string

const (
	JustificationShiftScale    Justification = "Escala 12x36"
	JustificationSickNote      Justification = "Atestado"
	JustificationLateEnrolment Justification = "Matricula Tardia"
	JustificationAuthorized    Justification = "Autorização do Professor"
)

// IsValid reports whether the justification is one of the accepted reasons
func (j Justification) IsValid() bool {
	switch j {
	case JustificationShiftScale, JustificationSickNote, JustificationLateEnrolment, JustificationAuthorized:
		return true
	}
	return false
}
