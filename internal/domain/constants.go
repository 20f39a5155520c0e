package domain

const (
	RoleJobseeker = "JOBSEEKER"
	RoleCompany   = "COMPANY"
)

const (
	JobTypeFulltime   = "Fulltime"
	JobTypeParttime   = "Parttime"
	JobTypeInternship = "Internship"
	JobTypeContract   = "Contract"
)

const (
	NotifApplicationReceived  = "APPLICATION_RECEIVED"
	NotifApplicationReview    = "APPLICATION_REVIEW"
	NotifApplicationInterview = "APPLICATION_INTERVIEW"
	NotifApplicationAccepted  = "APPLICATION_ACCEPTED"
	NotifApplicationRejected  = "APPLICATION_REJECTED"
	NotifNewJob               = "NEW_JOB"
)

// JobTypes lists the selectable employment types for a posting.
var JobTypes = []string{JobTypeFulltime, JobTypeParttime, JobTypeInternship, JobTypeContract}

func ValidJobType(t string) bool {
	for _, v := range JobTypes {
		if v == t {
			return true
		}
	}
	return false
}
