package submission

// Kind names one of the site's forms
type Kind string

const (
	KindContact  Kind = "contact"
	KindEmployer Kind = "employer"
	KindResume   Kind = "resume"
)

// Form is any user-submitted form handled by the desk
type Form interface {
	Kind() Kind
	sanitize(clean func(string) string)
}

// ContactForm is the "Send Us a Message" form
type ContactForm struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Subject string `json:"subject" validate:"required,contact_subject"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (ContactForm) Kind() Kind { return KindContact }

func (f *ContactForm) sanitize(clean func(string) string) {
	f.Name = clean(f.Name)
	f.Email = clean(f.Email)
	f.Phone = clean(f.Phone)
	f.Subject = clean(f.Subject)
	f.Message = clean(f.Message)
}

// EmployerRequirement is the "Post Your Hiring Requirement" form
type EmployerRequirement struct {
	FullName       string `json:"fullName" validate:"required,max=120"`
	Email          string `json:"email" validate:"required,email,max=254"`
	Mobile         string `json:"mobile" validate:"required,max=20"`
	Organization   string `json:"organization" validate:"required,max=200"`
	Position       string `json:"position" validate:"required,max=200"`
	Experience     string `json:"experience" validate:"required,numeric,max=2"`
	Brands         string `json:"brands" validate:"required,max=1000"`
	CTC            string `json:"ctc" validate:"required,max=50"`
	JobDescription string `json:"jobDescription" validate:"required,max=10000"`
	// JDFileName is the name of an optional attached job description; the
	// file itself never reaches the server
	JDFileName string `json:"jdFileName" validate:"omitempty,max=255"`
}

func (EmployerRequirement) Kind() Kind { return KindEmployer }

func (f *EmployerRequirement) sanitize(clean func(string) string) {
	f.FullName = clean(f.FullName)
	f.Email = clean(f.Email)
	f.Mobile = clean(f.Mobile)
	f.Organization = clean(f.Organization)
	f.Position = clean(f.Position)
	f.Experience = clean(f.Experience)
	f.Brands = clean(f.Brands)
	f.CTC = clean(f.CTC)
	f.JobDescription = clean(f.JobDescription)
	f.JDFileName = clean(f.JDFileName)
}

// ResumeForm is the candidate registration form on the upload page
type ResumeForm struct {
	FullName        string `json:"fullName" validate:"required,max=120"`
	Email           string `json:"email" validate:"required,email,max=254"`
	Phone           string `json:"phone" validate:"required,max=20"`
	CurrentLocation string `json:"currentLocation" validate:"required,max=200"`
	Experience      string `json:"experience" validate:"required,experience_band"`
	CurrentSalary   string `json:"currentSalary" validate:"omitempty,max=50"`
	ExpectedSalary  string `json:"expectedSalary" validate:"required,max=50"`
	NoticePeriod    string `json:"noticePeriod" validate:"required,notice_period"`
	JobCategory     string `json:"jobCategory" validate:"required,job_category"`
	KeySkills       string `json:"keySkills" validate:"required,max=1000"`
	// ResumeFileName must be present, mirroring the page's "Please upload
	// your resume" check. The file content is not inspected.
	ResumeFileName string `json:"resumeFileName" validate:"required,max=255"`
}

func (ResumeForm) Kind() Kind { return KindResume }

func (f *ResumeForm) sanitize(clean func(string) string) {
	f.FullName = clean(f.FullName)
	f.Email = clean(f.Email)
	f.Phone = clean(f.Phone)
	f.CurrentLocation = clean(f.CurrentLocation)
	f.Experience = clean(f.Experience)
	f.CurrentSalary = clean(f.CurrentSalary)
	f.ExpectedSalary = clean(f.ExpectedSalary)
	f.NoticePeriod = clean(f.NoticePeriod)
	f.JobCategory = clean(f.JobCategory)
	f.KeySkills = clean(f.KeySkills)
	f.ResumeFileName = clean(f.ResumeFileName)
}

// Select options offered by the forms
var (
	ContactSubjects = []string{"general", "job-seeker", "employer", "technical", "partnership"}
	ExperienceBands = []string{"0-1", "1-2", "2-4", "4-6", "6-10", "10+"}
	NoticePeriods   = []string{"Immediate", "1 month", "2 months", "3 months", "Serving notice"}
)
