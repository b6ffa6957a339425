package domain

// RequesterKind discriminates who a booking is made for
type RequesterKind string

const (
	RequesterIndividual RequesterKind = "INDIVIDUAL"
	RequesterTeam       RequesterKind = "TEAM"
)

// Requester is a tagged reference to either an individual or a team.
// Exactly one kind is valid for a booking; the admission usecase enforces it
// before the reference is ever resolved.
type Requester struct {
	Kind RequesterKind
	ID   int64
}

// Individual represents a single person resolved from DirectoryService
type Individual struct {
	ID   int64
	Name string
	Age  int // Неотрицательный, проверяется на стороне DirectoryService
}

// IsChild returns true for individuals under ChildAgeLimit.
// Children occupy no shared-desk seats but still count toward team headcount.
func (i Individual) IsChild() bool {
	return i.Age < ChildAgeLimit
}

// Team represents a group of individuals resolved from DirectoryService
type Team struct {
	ID        int64
	Name      string
	Members   []Individual
	CreatedBy int64
}

// MemberCount returns the total number of team members, children included
func (t Team) MemberCount() int {
	return len(t.Members)
}

// AdultMemberCount returns the number of members aged ChildAgeLimit or older
func (t Team) AdultMemberCount() int {
	count := 0
	for _, m := range t.Members {
		if !m.IsChild() {
			count++
		}
	}
	return count
}

// ChildMemberCount returns the number of members under ChildAgeLimit
func (t Team) ChildMemberCount() int {
	return t.MemberCount() - t.AdultMemberCount()
}

// IsEligibleForConferenceRoom returns true for teams of MinConferenceTeamSize
// or more members (children count toward eligibility)
func (t Team) IsEligibleForConferenceRoom() bool {
	return t.MemberCount() >= MinConferenceTeamSize
}

// IndividualOccupancy возвращает число мест shared desk, занимаемых индивидуальным
// бронированием: 1 для взрослого, 0 для ребенка
func IndividualOccupancy(i Individual) int {
	if i.IsChild() {
		return 0
	}
	return 1
}

// TeamOccupancy возвращает число мест shared desk, занимаемых командой:
// только взрослые участники, дети мест не занимают
func TeamOccupancy(t Team) int {
	return t.AdultMemberCount()
}
