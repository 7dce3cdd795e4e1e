// ============================================================================
// backend/internal/shared/models.go
// Shared data models and structs for MongoDB documents
// ============================================================================

package shared

// Every document carries a caller-supplied string id in the "id" field.
// MongoDB's own ObjectID _id is left alone and never exposed; no uniqueness
// constraint is declared on "id", so duplicate creates coexist silently.

// ============================================================================
// User Models
// ============================================================================

// User represents a user account (student, teacher, or admin).
// Passwords are stored and compared as plaintext; the stored record,
// password included, is returned to the caller on login.
type User struct {
	ID         string `bson:"id" json:"id" validate:"required"`
	Username   string `bson:"username" json:"username" validate:"required"`
	Password   string `bson:"password" json:"password" validate:"required"`
	Role       string `bson:"role" json:"role" validate:"required,oneof=student teacher admin"`
	Name       string `bson:"name" json:"name" validate:"required"`
	Email      string `bson:"email" json:"email" validate:"required"`
	ProfilePic string `bson:"profile_pic,omitempty" json:"profile_pic,omitempty"`
}

// LoginRequest is the POST /auth/login body.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is a business outcome, not a protocol error: bad credentials
// produce Success=false with a message and HTTP 200.
type LoginResponse struct {
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}

// ============================================================================
// Academic Models
// ============================================================================

// Student represents a student profile.
type Student struct {
	ID         string `bson:"id" json:"id" validate:"required"`
	Name       string `bson:"name" json:"name" validate:"required"`
	Department string `bson:"department" json:"department" validate:"required"`
	Year       int    `bson:"year" json:"year"`
	Semester   int    `bson:"semester" json:"semester"`
	Email      string `bson:"email" json:"email" validate:"required"`
	Phone      string `bson:"phone" json:"phone" validate:"required"`
	ProfilePic string `bson:"profile_pic,omitempty" json:"profile_pic,omitempty"`
}

// Grade represents internal assessment marks for one subject.
// TotalMarks is caller-supplied and never recomputed from the parts.
type Grade struct {
	ID          string `bson:"id" json:"id" validate:"required"`
	StudentID   string `bson:"student_id" json:"student_id" validate:"required"`
	StudentName string `bson:"student_name" json:"student_name" validate:"required"`
	Subject     string `bson:"subject" json:"subject" validate:"required"`
	SubjectCode string `bson:"subject_code" json:"subject_code" validate:"required"`
	PartAMarks  int    `bson:"part_a_marks" json:"part_a_marks"`
	PartBMarks  int    `bson:"part_b_marks" json:"part_b_marks"`
	TotalMarks  int    `bson:"total_marks" json:"total_marks"`
	Grade       string `bson:"grade" json:"grade" validate:"required"`
	Semester    int    `bson:"semester" json:"semester"`
	Year        int    `bson:"year" json:"year"`
}

// Attendance represents per-subject attendance for a student.
// Percentage is caller-supplied except after a waiver, which forces it to 100.
type Attendance struct {
	ID              string  `bson:"id" json:"id" validate:"required"`
	StudentID       string  `bson:"student_id" json:"student_id" validate:"required"`
	StudentName     string  `bson:"student_name" json:"student_name" validate:"required"`
	Subject         string  `bson:"subject" json:"subject" validate:"required"`
	SubjectCode     string  `bson:"subject_code" json:"subject_code" validate:"required"`
	TotalClasses    int     `bson:"total_classes" json:"total_classes"`
	AttendedClasses int     `bson:"attended_classes" json:"attended_classes"`
	Percentage      float64 `bson:"percentage" json:"percentage"`
	Semester        int     `bson:"semester" json:"semester"`
}

// AttendanceWaiverRequest is the POST /attendance/waive body.
type AttendanceWaiverRequest struct {
	StudentID   string `json:"student_id" validate:"required"`
	SubjectCode string `json:"subject_code" validate:"required"`
	Reason      string `json:"reason,omitempty"`
}

// StudyMaterial represents an uploaded course material reference.
type StudyMaterial struct {
	ID           string `bson:"id" json:"id" validate:"required"`
	Title        string `bson:"title" json:"title" validate:"required"`
	Subject      string `bson:"subject" json:"subject" validate:"required"`
	SubjectCode  string `bson:"subject_code" json:"subject_code" validate:"required"`
	Description  string `bson:"description" json:"description" validate:"required"`
	FileURL      string `bson:"file_url" json:"file_url" validate:"required"`
	UploadedBy   string `bson:"uploaded_by" json:"uploaded_by" validate:"required"`
	UploadedDate string `bson:"uploaded_date" json:"uploaded_date" validate:"required"`
	Semester     int    `bson:"semester" json:"semester"`
	Department   string `bson:"department" json:"department" validate:"required"`
}

// Schedule represents a weekly class slot taught by a teacher.
type Schedule struct {
	ID          string `bson:"id" json:"id" validate:"required"`
	TeacherID   string `bson:"teacher_id" json:"teacher_id" validate:"required"`
	TeacherName string `bson:"teacher_name" json:"teacher_name" validate:"required"`
	Subject     string `bson:"subject" json:"subject" validate:"required"`
	SubjectCode string `bson:"subject_code" json:"subject_code" validate:"required"`
	Day         string `bson:"day" json:"day" validate:"required"`
	TimeSlot    string `bson:"time_slot" json:"time_slot" validate:"required"`
	Room        string `bson:"room" json:"room" validate:"required"`
	Department  string `bson:"department" json:"department" validate:"required"`
	Year        int    `bson:"year" json:"year"`
	Semester    int    `bson:"semester" json:"semester"`
}

// ============================================================================
// Campus Life Models
// ============================================================================

// LibraryBook represents a title in the library catalog.
type LibraryBook struct {
	ID              string `bson:"id" json:"id" validate:"required"`
	Title           string `bson:"title" json:"title" validate:"required"`
	Author          string `bson:"author" json:"author" validate:"required"`
	ISBN            string `bson:"isbn" json:"isbn" validate:"required"`
	Category        string `bson:"category" json:"category" validate:"required"`
	Available       bool   `bson:"available" json:"available"`
	TotalCopies     int    `bson:"total_copies" json:"total_copies"`
	AvailableCopies int    `bson:"available_copies" json:"available_copies"`
}

// Event represents a campus event. RegisteredUsers is a duplicate-free,
// order-irrelevant set of user ids.
type Event struct {
	ID                   string   `bson:"id" json:"id" validate:"required"`
	Title                string   `bson:"title" json:"title" validate:"required"`
	Description          string   `bson:"description" json:"description" validate:"required"`
	Date                 string   `bson:"date" json:"date" validate:"required"`
	Time                 string   `bson:"time" json:"time" validate:"required"`
	Location             string   `bson:"location" json:"location" validate:"required"`
	EventType            string   `bson:"event_type" json:"event_type" validate:"required,oneof=academic cultural sports holiday"`
	RegistrationRequired bool     `bson:"registration_required" json:"registration_required"`
	RegisteredUsers      []string `bson:"registered_users" json:"registered_users"`
}

// Complaint represents a student complaint with a per-user vote toggle.
// Invariant: Votes stays equal to len(VotedBy) under sequential toggles.
// Status only ever moves pending -> resolved.
type Complaint struct {
	ID              string   `bson:"id" json:"id" validate:"required"`
	Title           string   `bson:"title" json:"title" validate:"required"`
	Description     string   `bson:"description" json:"description" validate:"required"`
	ComplaintType   string   `bson:"complaint_type" json:"complaint_type" validate:"required,oneof=public private"`
	Status          string   `bson:"status" json:"status" validate:"required,oneof=pending resolved"`
	SubmittedBy     string   `bson:"submitted_by" json:"submitted_by" validate:"required"`
	SubmittedByName string   `bson:"submitted_by_name" json:"submitted_by_name" validate:"required"`
	SubmittedDate   string   `bson:"submitted_date" json:"submitted_date" validate:"required"`
	AssignedTo      string   `bson:"assigned_to,omitempty" json:"assigned_to,omitempty"`
	Votes           int      `bson:"votes" json:"votes"`
	VotedBy         []string `bson:"voted_by" json:"voted_by"`
	Response        string   `bson:"response,omitempty" json:"response,omitempty"`
	ResolvedDate    string   `bson:"resolved_date,omitempty" json:"resolved_date,omitempty"`
}

// Notice represents an announcement targeted at an audience list.
type Notice struct {
	ID             string   `bson:"id" json:"id" validate:"required"`
	Title          string   `bson:"title" json:"title" validate:"required"`
	Content        string   `bson:"content" json:"content" validate:"required"`
	PostedBy       string   `bson:"posted_by" json:"posted_by" validate:"required"`
	PostedDate     string   `bson:"posted_date" json:"posted_date" validate:"required"`
	Priority       string   `bson:"priority" json:"priority" validate:"required,oneof=low medium high"`
	TargetAudience []string `bson:"target_audience" json:"target_audience" validate:"required"`
}

// ============================================================================
// Request/Response Models
// ============================================================================

// UserIDRequest is the body for event registration and complaint voting.
type UserIDRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// ResolveRequest is the PUT /complaints/{id}/resolve body.
type ResolveRequest struct {
	Response string `json:"response"`
}

// StatusResponse is the generic {success, message} payload.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// VoteResponse reports the direction a vote toggle took.
type VoteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Action  string `json:"action"` // "added" or "removed"
}

// ============================================================================
// Constants
// ============================================================================

const (
	// User roles
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"

	// Event types
	EventAcademic = "academic"
	EventCultural = "cultural"
	EventSports   = "sports"
	EventHoliday  = "holiday"

	// Complaint types and statuses
	ComplaintPublic  = "public"
	ComplaintPrivate = "private"
	StatusPending    = "pending"
	StatusResolved   = "resolved"

	// Vote toggle actions
	VoteAdded   = "added"
	VoteRemoved = "removed"

	// Notice priorities
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Collection names, one document collection per entity.
const (
	CollectionUsers      = "users"
	CollectionStudents   = "students"
	CollectionGrades     = "grades"
	CollectionAttendance = "attendance"
	CollectionMaterials  = "materials"
	CollectionLibrary    = "library"
	CollectionEvents     = "events"
	CollectionComplaints = "complaints"
	CollectionSchedules  = "schedules"
	CollectionNotices    = "notices"
)

// ListCap bounds every collection scan; there is no pagination beyond it.
const ListCap = 1000
