package validation

import (
	"inkwell/internal/models"
)

// Field length limits mirror the users table column sizes.
const (
	maxFirstNameLen = 50
	maxLastNameLen  = 50
	maxNicknameLen  = 30
	maxPasswordLen  = 255
	maxEmailLen     = 100
	maxLocationLen  = 100
	maxGenderLen    = 20
	maxJobTitleLen  = 100
	maxPhoneLen     = 20
)

// ValidateUserCreate checks a user creation payload.
func ValidateUserCreate(in models.UserCreateInput) Violations {
	var v Violations

	v.required("first_name", in.FirstName)
	v.maxLen("first_name", in.FirstName, maxFirstNameLen)
	v.required("last_name", in.LastName)
	v.maxLen("last_name", in.LastName, maxLastNameLen)
	v.required("nickname", in.Nickname)
	v.maxLen("nickname", in.Nickname, maxNicknameLen)
	v.required("password", in.Password)
	v.maxLen("password", in.Password, maxPasswordLen)
	v.required("email", in.Email)
	v.maxLen("email", in.Email, maxEmailLen)
	v.email("email", in.Email)

	v.required("birthdate", in.Birthdate)
	if in.Birthdate != "" {
		if _, err := models.ParseDate(in.Birthdate); err != nil {
			v.add("birthdate", "must be an ISO date (YYYY-MM-DD)")
		}
	}

	validateUserOptionals(&v, in.Location, in.Gender, in.JobTitle, in.Phone)
	return v
}

// ValidateUserUpdate checks a sparse user patch; only supplied fields are
// inspected.
func ValidateUserUpdate(in models.UserUpdateInput) Violations {
	var v Violations

	if in.FirstName != nil {
		v.required("first_name", *in.FirstName)
		v.maxLen("first_name", *in.FirstName, maxFirstNameLen)
	}
	if in.LastName != nil {
		v.required("last_name", *in.LastName)
		v.maxLen("last_name", *in.LastName, maxLastNameLen)
	}
	if in.Nickname != nil {
		v.required("nickname", *in.Nickname)
		v.maxLen("nickname", *in.Nickname, maxNicknameLen)
	}
	if in.Password != nil {
		v.required("password", *in.Password)
		v.maxLen("password", *in.Password, maxPasswordLen)
	}
	if in.Email != nil {
		v.required("email", *in.Email)
		v.maxLen("email", *in.Email, maxEmailLen)
		v.email("email", *in.Email)
	}
	if in.Birthdate != nil {
		if _, err := models.ParseDate(*in.Birthdate); err != nil {
			v.add("birthdate", "must be an ISO date (YYYY-MM-DD)")
		}
	}

	validateUserOptionals(&v, in.Location.Value, in.Gender.Value, in.JobTitle.Value, in.Phone.Value)
	return v
}

// ValidateUserSearch checks user search filters and pagination.
func ValidateUserSearch(in models.UserSearchInput) Violations {
	var v Violations
	v.pagination(in.Skip, in.Limit)
	return v
}

func validateUserOptionals(v *Violations, location, gender, jobTitle, phone *string) {
	if location != nil {
		v.maxLen("location", *location, maxLocationLen)
	}
	if gender != nil {
		v.maxLen("gender", *gender, maxGenderLen)
	}
	if jobTitle != nil {
		v.maxLen("job_title", *jobTitle, maxJobTitleLen)
	}
	if phone != nil {
		v.maxLen("phone", *phone, maxPhoneLen)
	}
}
