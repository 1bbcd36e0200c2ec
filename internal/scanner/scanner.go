package scanner

import (
	"database/sql"

	"github.com/lib/pq"
	model "github.com/viftode4/partydrinks/internal/models"
	"github.com/viftode4/partydrinks/internal/utils"
)

// ScanUser scanne une ligne SQL vers un User
func ScanUser(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.User, error) {
	var u model.User
	var imageURL sql.NullString

	err := scanner.Scan(&u.ID, &u.Username, &imageURL, &u.CreatedAt)
	if err != nil {
		return nil, err
	}

	u.ImageURL = utils.NullStringToString(imageURL)

	return &u, nil
}

// ScanDrinkEvent scanne une ligne SQL vers un DrinkEvent
func ScanDrinkEvent(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.DrinkEvent, error) {
	var d model.DrinkEvent

	err := scanner.Scan(&d.ID, &d.UserID, &d.DrinkType, &d.Points, &d.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// ScanCigaretteEvent scanne une ligne SQL vers un CigaretteEvent
func ScanCigaretteEvent(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.CigaretteEvent, error) {
	var c model.CigaretteEvent

	err := scanner.Scan(&c.ID, &c.UserID, &c.Count, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// ScanPost scanne une ligne SQL vers un Post enrichi (auteur + totaux courants).
// Utilise pq.Array pour la colonne image_urls (text[]).
func ScanPost(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Post, error) {
	var p model.Post
	var userImage sql.NullString
	var totalPoints, cigaretteCount sql.NullInt64

	err := scanner.Scan(
		&p.ID, &p.UserID, &p.Content, pq.Array(&p.ImageURLs), &p.CreatedAt,
		&p.Username, &userImage, &totalPoints, &cigaretteCount,
	)
	if err != nil {
		return nil, err
	}

	p.UserImageURL = utils.NullStringToString(userImage)
	p.TotalPoints = utils.NullInt64ToInt(totalPoints)
	p.CigaretteCount = utils.NullInt64ToInt(cigaretteCount)
	if p.ImageURLs == nil {
		p.ImageURLs = []string{}
	}

	return &p, nil
}
