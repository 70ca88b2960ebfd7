package contacts

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/emersion/go-vcard"
	"github.com/gofiber/fiber/v2"

	"akshu/helpers"
	"akshu/middlewares"
	"akshu/models"
)

type importedContact struct {
	Name  string
	Phone string
	Email string
}

// parseVCF decodes a vCard stream into importable contacts. Entries without
// a phone number are dropped; mobile/voice numbers are preferred when a card
// lists several.
func parseVCF(r io.Reader) ([]importedContact, error) {
	dec := vcard.NewDecoder(r)

	var out []importedContact
	for {
		card, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		name := card.PreferredValue(vcard.FieldFormattedName)
		if name == "" {
			if n := card.Name(); n != nil {
				name = strings.TrimSpace(n.GivenName + " " + n.FamilyName)
			}
		}
		if name == "" {
			name = "Unknown Contact (VCF Import)"
		}

		var phone string
		for _, tel := range card[vcard.FieldTelephone] {
			if tel.Value == "" {
				continue
			}
			phone = tel.Value
			if hasType(tel, "CELL") || hasType(tel, "VOICE") {
				break
			}
		}
		if phone == "" {
			continue
		}

		out = append(out, importedContact{
			Name:  name,
			Phone: phone,
			Email: card.PreferredValue(vcard.FieldEmail),
		})
	}
	return out, nil
}

func hasType(f *vcard.Field, typ string) bool {
	for _, t := range f.Params[vcard.ParamType] {
		if strings.EqualFold(t, typ) {
			return true
		}
	}
	return false
}

// ImportVCF parses an uploaded .vcf file and stores every entry that
// carries a phone number.
func (h *Handler) ImportVCF(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("vcf_file")
	if err != nil {
		return helpers.JSONError(c, "No file part in the request.")
	}
	if fileHeader.Filename == "" {
		return helpers.JSONError(c, "No selected file.")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".vcf") {
		return helpers.JSONError(c, "Invalid file type. Please upload a .vcf file.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return helpers.JSONError(c, "Could not read file content.")
	}
	defer file.Close()

	imported, err := parseVCF(file)
	if err != nil {
		log.Printf("[CONTACTS] ❌ VCF parsing failed: %v", err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "VCF parsing failed. Please check file format.")
	}

	userID := middlewares.UserID(c)
	count := 0
	for _, entry := range imported {
		contact := models.Contact{
			UserID: userID,
			Name:   entry.Name,
			Phone:  entry.Phone,
			Email:  entry.Email,
			Source: "vcf_import",
		}
		if err := h.db.Create(&contact).Error; err != nil {
			log.Printf("[CONTACTS] ❌ Failed to save imported contact: %v", err)
			continue
		}
		count++
	}

	if count == 0 {
		return helpers.JSONError(c, "No valid contacts found in the VCF file (0 phone numbers extracted).")
	}
	return helpers.JSONSuccess(c, fmt.Sprintf("Successfully imported %d contact(s).", count), fiber.Map{
		"imported": count,
	})
}
