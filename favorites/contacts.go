package favorites

import (
	"strings"

	"github.com/brightwood-pta/directorybackend/directory"
	"github.com/brightwood-pta/directorybackend/models"
)

// Filters are the four independent toggles controlling which contact
// channels are expanded from favorites.
type Filters struct {
	PrimaryPhones   bool `json:"primaryPhones"`
	SecondaryPhones bool `json:"secondaryPhones"`
	Emails          bool `json:"emails"`
	Addresses       bool `json:"addresses"`
}

// AllFilters enables every channel.
func AllFilters() Filters {
	return Filters{PrimaryPhones: true, SecondaryPhones: true, Emails: true, Addresses: true}
}

// DeriveContactOptions expands each favorite into its selectable contact
// options plus the address groups. Options are recomputed on every call, not
// persisted. The first occurrence of each distinct formatted address becomes
// an auto-selected address option; secondary addresses and every phone/email
// option default to unselected. A student's secondary address only appears
// when it is textually different from the primary.
func DeriveContactOptions(state models.FavoritesState, filters Filters) ([]models.ContactOption, []models.AddressGroup) {
	options := make([]models.ContactOption, 0)
	groupContacts := make([]models.ContactOption, 0)
	seenAddresses := make(map[string]bool)

	addAddressOption := func(opt models.ContactOption) {
		if !seenAddresses[opt.Value] {
			seenAddresses[opt.Value] = true
			options = append(options, opt)
		}
		groupContacts = append(groupContacts, opt)
	}

	for _, item := range state.Items {
		switch item.Type {
		case models.FavoriteTypeStudent:
			if item.Student == nil {
				continue
			}
			expandStudent(item, *item.Student, filters, &options, addAddressOption)
		case models.FavoriteTypeParent:
			if item.Parent == nil {
				continue
			}
			expandParent(item, *item.Parent, filters, &options, addAddressOption)
		}
	}

	return options, directory.GroupByAddress(groupContacts)
}

func expandStudent(item models.FavoriteItem, student models.Student, filters Filters, options *[]models.ContactOption, addAddress func(models.ContactOption)) {
	primaryAddress := student.PrimaryAddress()

	if filters.Addresses {
		addAddress(models.ContactOption{
			ID:        item.ID + "-address-primary",
			Name:      student.FullName() + "'s Address",
			Type:      models.ContactTypeAddress,
			Value:     primaryAddress,
			Selected:  true,
			StudentID: student.ID,
		})

		if secondary := student.SecondaryAddress(); secondary != "" && secondary != primaryAddress {
			addAddress(models.ContactOption{
				ID:        item.ID + "-address-secondary",
				Name:      student.FullName() + "'s Secondary Address",
				Type:      models.ContactTypeAddress,
				Value:     secondary,
				Selected:  false,
				StudentID: student.ID,
			})
		}
	}

	for _, g := range student.Guardians() {
		if !g.Present() {
			continue
		}

		// f2 guardians anchor at the secondary address when the record has one
		address := primaryAddress
		if strings.HasPrefix(g.Slot, "f2") {
			if secondary := student.SecondaryAddress(); secondary != "" {
				address = secondary
			}
		}

		guardianName := *g.FirstName + " " + *g.LastName

		if g.Phone != nil && filters.PrimaryPhones {
			*options = append(*options, models.ContactOption{
				ID:        item.ID + "-" + g.Slot + "-phone",
				Name:      guardianName + " (" + student.FirstName + "'s parent)",
				Type:      models.ContactTypePhone,
				PhoneType: models.PhoneTypePrimary,
				Value:     *g.Phone,
				Selected:  false,
				Address:   address,
			})
		}

		if g.SecondPhone != nil && filters.SecondaryPhones {
			*options = append(*options, models.ContactOption{
				ID:        item.ID + "-" + g.Slot + "-second-phone",
				Name:      guardianName + " (2nd phone)",
				Type:      models.ContactTypePhone,
				PhoneType: models.PhoneTypeSecondary,
				Value:     *g.SecondPhone,
				Selected:  false,
				Address:   address,
			})
		}

		if g.Email != nil && filters.Emails {
			*options = append(*options, models.ContactOption{
				ID:       item.ID + "-" + g.Slot + "-email",
				Name:     guardianName + " (email)",
				Type:     models.ContactTypeEmail,
				Value:    *g.Email,
				Selected: false,
				Address:  address,
			})
		}
	}
}

func expandParent(item models.FavoriteItem, parent models.Parent, filters Filters, options *[]models.ContactOption, addAddress func(models.ContactOption)) {
	address := parent.Address()

	if filters.Addresses && address != "" {
		addAddress(models.ContactOption{
			ID:       item.ID + "-address",
			Name:     parent.FullName() + "'s Address",
			Type:     models.ContactTypeAddress,
			Value:    address,
			Selected: true,
			ParentID: parent.ID,
		})
	}

	if parent.Phone != nil && filters.PrimaryPhones {
		*options = append(*options, models.ContactOption{
			ID:        item.ID + "-phone",
			Name:      parent.FullName(),
			Type:      models.ContactTypePhone,
			PhoneType: models.PhoneTypePrimary,
			Value:     *parent.Phone,
			Selected:  false,
			Address:   address,
		})
	}

	if parent.SecondPhone != nil && filters.SecondaryPhones {
		*options = append(*options, models.ContactOption{
			ID:        item.ID + "-second-phone",
			Name:      parent.FullName() + " (2nd phone)",
			Type:      models.ContactTypePhone,
			PhoneType: models.PhoneTypeSecondary,
			Value:     *parent.SecondPhone,
			Selected:  false,
			Address:   address,
		})
	}

	if parent.Email != nil && filters.Emails {
		*options = append(*options, models.ContactOption{
			ID:       item.ID + "-email",
			Name:     parent.FullName() + " (email)",
			Type:     models.ContactTypeEmail,
			Value:    *parent.Email,
			Selected: false,
			Address:  address,
		})
	}
}

// GroupSMSLink builds a single sms: recipient link from the selected phone
// options, digits-only numbers joined by commas. Returns "" when nothing is
// selected. Invoking the link is the caller's concern; this is pure string
// building.
func GroupSMSLink(options []models.ContactOption) string {
	numbers := make([]string, 0)
	for _, opt := range options {
		if opt.Selected && opt.Type == models.ContactTypePhone {
			numbers = append(numbers, digitsOnly(opt.Value))
		}
	}
	if len(numbers) == 0 {
		return ""
	}
	return "sms:" + strings.Join(numbers, ",")
}

// GroupEmailLink builds a single mailto: recipient link from the selected
// email options, joined by commas. Returns "" when nothing is selected.
func GroupEmailLink(options []models.ContactOption) string {
	emails := make([]string, 0)
	for _, opt := range options {
		if opt.Selected && opt.Type == models.ContactTypeEmail {
			emails = append(emails, opt.Value)
		}
	}
	if len(emails) == 0 {
		return ""
	}
	return "mailto:" + strings.Join(emails, ",")
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, ch := range phone {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
