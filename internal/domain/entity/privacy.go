package entity

type Visibility string

const (
	VisibilityPublic        Visibility = "public"
	VisibilityAuthenticated Visibility = "authenticated"
	VisibilityPrivate       Visibility = "private"
)

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityAuthenticated, VisibilityPrivate:
		return true
	}
	return false
}

// PrivacySettings holds one visibility per guarded field group. Fields not
// listed here are always visible.
type PrivacySettings struct {
	Email       Visibility `json:"email" firestore:"email"`
	Phone       Visibility `json:"phone" firestore:"phone"`
	Location    Visibility `json:"location" firestore:"location"`
	Experience  Visibility `json:"experience" firestore:"experience"`
	Education   Visibility `json:"education" firestore:"education"`
	Projects    Visibility `json:"projects" firestore:"projects"`
	Tasks       Visibility `json:"tasks" firestore:"tasks"`
	Ratings     Visibility `json:"ratings" firestore:"ratings"`
	Referrals   Visibility `json:"referrals" firestore:"referrals"`
	SocialLinks Visibility `json:"socialLinks" firestore:"socialLinks"`
}

func DefaultPrivacySettings() PrivacySettings {
	return PrivacySettings{
		Email:       VisibilityPrivate,
		Phone:       VisibilityPrivate,
		Location:    VisibilityPublic,
		Experience:  VisibilityPublic,
		Education:   VisibilityPublic,
		Projects:    VisibilityPublic,
		Tasks:       VisibilityAuthenticated,
		Ratings:     VisibilityPublic,
		Referrals:   VisibilityAuthenticated,
		SocialLinks: VisibilityPublic,
	}
}

// WithDefaults fills unset groups from DefaultPrivacySettings. Records written
// before a group existed have an empty value there.
func (s PrivacySettings) WithDefaults() PrivacySettings {
	d := DefaultPrivacySettings()
	fill := func(v *Visibility, def Visibility) {
		if *v == "" {
			*v = def
		}
	}
	fill(&s.Email, d.Email)
	fill(&s.Phone, d.Phone)
	fill(&s.Location, d.Location)
	fill(&s.Experience, d.Experience)
	fill(&s.Education, d.Education)
	fill(&s.Projects, d.Projects)
	fill(&s.Tasks, d.Tasks)
	fill(&s.Ratings, d.Ratings)
	fill(&s.Referrals, d.Referrals)
	fill(&s.SocialLinks, d.SocialLinks)
	return s
}

func (s PrivacySettings) Valid() bool {
	for _, v := range []Visibility{
		s.Email, s.Phone, s.Location, s.Experience, s.Education,
		s.Projects, s.Tasks, s.Ratings, s.Referrals, s.SocialLinks,
	} {
		if !v.Valid() {
			return false
		}
	}
	return true
}
