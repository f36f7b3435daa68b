package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	cldapi "github.com/cloudinary/cloudinary-go/v2/api"

	"github.com/vowlink/wedding-invites-api/api"
	"github.com/vowlink/wedding-invites-api/config"
	"github.com/vowlink/wedding-invites-api/databases"
)

// Upload signs direct-to-Cloudinary uploads for premium template preview
// images. The client uploads straight to Cloudinary with the returned
// signature, the API never proxies image bytes.
type Upload struct {
	UDB databases.UserDatabase
}

// GenerateSignatureHandler returns a signed timestamp+preset pair.
func (u Upload) GenerateSignatureHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserIDFromContext(r.Context())
	if !ok {
		config.ErrorStatus("missing authenticated user", http.StatusUnauthorized, w, errors.New("no user in context"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.UDB.FindByID(ctx, userID)
	if err != nil {
		config.ErrorStatus("failed to get user", http.StatusInternalServerError, w, err)
		return
	}
	if !user.IsPremium {
		config.ErrorStatus("premium subscription required", http.StatusForbidden, w, errors.New("account is not premium"))
		return
	}

	secret := os.Getenv("CLOUDINARY_API_SECRET")
	preset := os.Getenv("CLOUDINARY_UPLOAD_PRESET")
	if secret == "" || preset == "" {
		config.ErrorStatus("uploads are not configured", http.StatusServiceUnavailable, w, errors.New("cloudinary env missing"))
		return
	}

	timestamp := time.Now().Unix()
	params := url.Values{
		"timestamp":     {fmt.Sprintf("%d", timestamp)},
		"upload_preset": {preset},
	}
	signature, err := cldapi.SignParameters(params, secret)
	if err != nil {
		config.ErrorStatus("failed to sign upload parameters", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(map[string]interface{}{
		"timestamp":     timestamp,
		"signature":     signature,
		"upload_preset": preset,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Write(b)
}
