package v1

import (
	"time"

	"github.com/fragora/fragora/store"
)

// Wire types. Field names follow the mobile client's JSON contract.

type perfumeNotesResponse struct {
	Top   []string `json:"top"`
	Heart []string `json:"heart"`
	Base  []string `json:"base"`
}

type usageStatsResponse struct {
	Day    int `json:"day"`
	Night  int `json:"night"`
	Summer int `json:"summer"`
	Winter int `json:"winter"`
	Office int `json:"office"`
	Date   int `json:"date"`
}

type buyLinkResponse struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type perfumeResponse struct {
	ID                    string               `json:"id"`
	Name                  string               `json:"name"`
	Brand                 string               `json:"brand"`
	Year                  int                  `json:"year,omitempty"`
	Concentration         string               `json:"concentration"`
	Family                string               `json:"family"`
	Notes                 perfumeNotesResponse `json:"notes"`
	Tags                  []string             `json:"tags"`
	AverageRating         float64              `json:"averageRating"`
	AverageLongevityHours float64              `json:"averageLongevityHours"`
	AverageIntensity      string               `json:"averageIntensity"`
	UsageStats            usageStatsResponse   `json:"usageStats"`
	ImageURL              string               `json:"imageUrl,omitempty"`
	BuyLinks              []buyLinkResponse    `json:"buyLinks,omitempty"`
}

func convertPerfume(perfume *store.Perfume) *perfumeResponse {
	response := &perfumeResponse{
		ID:            perfume.ID,
		Name:          perfume.Name,
		Brand:         perfume.Brand,
		Year:          perfume.Year,
		Concentration: perfume.Concentration,
		Family:        perfume.Family,
		Notes: perfumeNotesResponse{
			Top:   perfume.Notes.Top,
			Heart: perfume.Notes.Heart,
			Base:  perfume.Notes.Base,
		},
		Tags:                  perfume.Tags,
		AverageRating:         perfume.AverageRating,
		AverageLongevityHours: perfume.AverageLongevityHours,
		AverageIntensity:      perfume.AverageIntensity,
		UsageStats: usageStatsResponse{
			Day:    perfume.UsageStats.Day,
			Night:  perfume.UsageStats.Night,
			Summer: perfume.UsageStats.Summer,
			Winter: perfume.UsageStats.Winter,
			Office: perfume.UsageStats.Office,
			Date:   perfume.UsageStats.Date,
		},
		ImageURL: perfume.ImageURL,
	}
	for _, link := range perfume.BuyLinks {
		response.BuyLinks = append(response.BuyLinks, buyLinkResponse{Label: link.Label, URL: link.URL})
	}
	return response
}

func convertPerfumeList(perfumes []*store.Perfume) []*perfumeResponse {
	list := make([]*perfumeResponse, 0, len(perfumes))
	for _, perfume := range perfumes {
		list = append(list, convertPerfume(perfume))
	}
	return list
}

type userPreferencesResponse struct {
	UserID    string   `json:"userId"`
	Likes     []string `json:"likes"`
	Dislikes  []string `json:"dislikes"`
	Favorites []string `json:"favorites"`
	WantToTry []string `json:"wantToTry"`
	HaveIt    []string `json:"haveIt"`
}

func convertUserPreferences(prefs *store.UserPreferences) *userPreferencesResponse {
	return &userPreferencesResponse{
		UserID:    prefs.UserID,
		Likes:     emptyIfNil(prefs.Likes),
		Dislikes:  emptyIfNil(prefs.Dislikes),
		Favorites: emptyIfNil(prefs.Favorites),
		WantToTry: emptyIfNil(prefs.WantToTry),
		HaveIt:    emptyIfNil(prefs.HaveIt),
	}
}

// emptyIfNil keeps the wire format as [] rather than null; the client does
// not null-check these lists.
func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

type reviewResponse struct {
	UID       string `json:"uid"`
	UserID    string `json:"userId"`
	PerfumeID string `json:"perfumeId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
}

func convertReview(review *store.Review) *reviewResponse {
	return &reviewResponse{
		UID:       review.UID,
		UserID:    review.UserID,
		PerfumeID: review.PerfumeID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: time.Unix(review.CreatedTs, 0).UTC().Format(time.RFC3339),
	}
}

func convertReviewList(reviews []*store.Review) []*reviewResponse {
	list := make([]*reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		list = append(list, convertReview(review))
	}
	return list
}
