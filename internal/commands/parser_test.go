// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/propdesk/internal/model"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// =============================================================================
// REGISTRY
// =============================================================================

func TestNewRegistry_Words(t *testing.T) {
	reg := NewRegistry()
	words := []string{
		"addbuyer", "addseller", "deletebuyer", "deleteseller", "filterclient",
		"addproperty", "deleteproperty", "filterproperty",
		"addmeeting", "deletemeeting",
		"list", "clear", "help", "exit",
	}
	assert.Equal(t, words, reg.Words())

	for _, w := range words {
		spec := reg.Get(w)
		require.NotNil(t, spec, w)
		assert.NotEmpty(t, spec.Usage)
		assert.NotEmpty(t, spec.Description)
		assert.NotNil(t, spec.Parse)
	}
}

func TestRegistry_ByCategory(t *testing.T) {
	groups := NewRegistry().ByCategory()
	assert.Len(t, groups[CategoryClients], 5)
	assert.Len(t, groups[CategoryProperties], 3)
	assert.Len(t, groups[CategoryMeetings], 2)
	assert.Len(t, groups[CategoryGeneral], 4)
}

func TestRegistry_HelpMarkdown(t *testing.T) {
	md := NewRegistry().HelpMarkdown()
	assert.Contains(t, md, "## Clients")
	assert.Contains(t, md, "## Meetings")
	assert.Contains(t, md, "**addbuyer**")
	assert.Contains(t, md, "Parameters: n/NAME p/PHONE e/EMAIL")
	assert.NotContains(t, md, "addbuyer: Adds a buyer")
}

func TestRegistry_Parse_EmptyInput(t *testing.T) {
	_, err := NewRegistry().Parse("   ")
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, fmt.Sprintf(MessageInvalidFormat, helpUsage), perr.Message)
}

func TestRegistry_Parse_UnknownCommand(t *testing.T) {
	_, err := NewRegistry().Parse("sellhouse p/123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCommand))
	assert.Equal(t, MessageUnknownCommand, err.Error())
}

func TestRegistry_Parse_WordIsCaseSensitive(t *testing.T) {
	for _, line := range []string{"HELP", "AddBuyer n/John p/91234567 e/john@example.com"} {
		_, err := NewRegistry().Parse(line)
		assert.ErrorIs(t, err, ErrUnknownCommand, line)
	}

	cmd, err := NewRegistry().Parse("help")
	require.NoError(t, err)
	assert.Equal(t, HelpCommand{}, cmd)
}

// =============================================================================
// PARSERS: SUCCESS
// =============================================================================

func TestRegistry_Parse_Commands(t *testing.T) {
	john := model.NewBuyer(
		must(model.NewName("John Tan")),
		must(model.NewPhone("91234567")),
		must(model.NewEmail("john@example.com")),
	)
	mary := model.NewSeller(
		must(model.NewName("Mary")),
		must(model.NewPhone("98765432")),
		must(model.NewEmail("mary@example.com")),
	)
	flat := model.Property{
		PostalCode: must(model.NewPostalCode("123456")),
		Unit:       must(model.NewUnit("11-11")),
		Type:       model.TypeHDB,
		Ask:        must(model.NewAsk("500000")),
		Bid:        must(model.NewBid("480000")),
	}
	viewing := model.Meeting{
		Title:      must(model.NewMeetingTitle("Viewing")),
		Date:       must(model.NewMeetingDate("2024-05-01")),
		Buyer:      must(model.NewName("John")),
		Seller:     must(model.NewName("Mary")),
		Type:       model.TypeCondo,
		PostalCode: must(model.NewPostalCode("123456")),
	}

	tests := []struct {
		line string
		want Command
	}{
		{"addbuyer n/John Tan p/91234567 e/john@example.com", AddClientCommand{Client: john}},
		{"addseller e/mary@example.com n/Mary p/98765432", AddClientCommand{Client: mary}},
		{"deletebuyer p/91234567", DeleteClientCommand{Kind: model.Buyer, Phone: john.Phone}},
		{"deleteseller  p/98765432 ", DeleteClientCommand{Kind: model.Seller, Phone: mary.Phone}},
		{"addproperty pc/123456 u/11-11 t/hdb a/500000 bd/480000", AddPropertyCommand{Property: flat}},
		{
			"addproperty pc/123456 u/11-11 t/HDB",
			AddPropertyCommand{Property: model.Property{PostalCode: flat.PostalCode, Unit: flat.Unit, Type: model.TypeHDB}},
		},
		{"deleteproperty u/11-11 pc/123456", DeletePropertyCommand{PostalCode: flat.PostalCode, Unit: flat.Unit}},
		{"addmeeting mt/Viewing md/2024-05-01 b/John s/Mary t/condo pc/123456", AddMeetingCommand{Meeting: viewing}},
		{"deletemeeting mt/Viewing md/2024-05-01", DeleteMeetingCommand{Title: viewing.Title, Date: viewing.Date}},
		{"list k/Buyers", ListCommand{Key: ListBuyers}},
		{"list k/PROPERTIES", ListCommand{Key: ListProperties}},
		{"filterclient n/Jo", FilterClientCommand{Prefix: must(model.NewName("Jo"))}},
		{
			"filterproperty t/HDB lte/500000",
			FilterPropertyCommand{Criteria: model.PropertyCriteria{Type: model.TypeHDB, Max: must(model.NewMatchingPrice("500000"))}},
		},
		{
			"filterproperty gte/100",
			FilterPropertyCommand{Criteria: model.PropertyCriteria{Min: must(model.NewMatchingPrice("100"))}},
		},
		{"help me please", HelpCommand{}},
		{"exit", ExitCommand{}},
		{"clear everything", ClearCommand{}},
	}

	reg := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := reg.Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, reg.Get(got.Word()).Word, got.Word())
		})
	}
}

// =============================================================================
// PARSERS: FAILURES
// =============================================================================

func TestRegistry_Parse_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		// missing prefix or preamble
		{"addbuyer missing email", "addbuyer n/John p/91234567", fmt.Sprintf(MessageInvalidFormat, addBuyerUsage)},
		{"addseller preamble", "addseller x n/Mary p/987 e/m@ex.com", fmt.Sprintf(MessageInvalidFormat, addSellerUsage)},
		{"addproperty missing type", "addproperty pc/123456 u/1-1", fmt.Sprintf(MessageInvalidFormat, addPropertyUsage)},
		{"deleteproperty missing unit", "deleteproperty pc/123456", fmt.Sprintf(MessageInvalidFormat, deletePropertyUsage)},
		{"addmeeting missing seller", "addmeeting mt/V md/2024-05-01 b/J t/HDB pc/123456", fmt.Sprintf(MessageInvalidFormat, addMeetingUsage)},
		{"deletemeeting missing date", "deletemeeting mt/Viewing", fmt.Sprintf(MessageInvalidFormat, deleteMeetingUsage)},
		{"list no key", "list", fmt.Sprintf(MessageInvalidFormat, listUsage)},
		{"list bad key", "list k/meetings", fmt.Sprintf(MessageInvalidFormat, listUsage)},
		{"filterclient no name", "filterclient Jo", fmt.Sprintf(MessageInvalidFormat, filterClientUsage)},
		{"filterproperty no criteria", "filterproperty", fmt.Sprintf(MessageInvalidFormat, filterPropertyUsage)},

		// duplicates
		{"addbuyer duplicate name", "addbuyer n/A n/B p/911 e/a@ex.com", MessageDuplicateFields + "n/"},
		{"addproperty duplicates", "addproperty pc/123456 u/1-1 t/HDB pc/654321 u/2-2", MessageDuplicateFields + "pc/ u/"},
		{"filterproperty duplicate", "filterproperty lte/1 lte/2", MessageDuplicateFields + "lte/"},
		{"filterclient duplicate name", "filterclient n/Jo n/Ma", MessageDuplicateFields + "n/"},

		// values
		{"addbuyer bad phone", "addbuyer n/John p/12 e/john@example.com", model.PhoneConstraints},
		{"addbuyer bad name", "addbuyer n/J@hn p/911 e/john@example.com", model.NameConstraints},
		{"addproperty bad type", "addproperty pc/123456 u/1-1 t/Bungalow", model.TypeConstraints},
		{"addproperty bad ask", "addproperty pc/123456 u/1-1 t/HDB a/1.5", model.AskConstraints},
		{"addproperty bad bid", "addproperty pc/123456 u/1-1 t/HDB bd/$5", model.BidConstraints},
		{"addmeeting bad date", "addmeeting mt/V md/2024-02-30 b/J s/M t/HDB pc/123456", model.MeetingDateConstraints},
		{"filterproperty bad bound", "filterproperty t/HDB lte/abc", model.MatchingPriceConstraints},
	}

	reg := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.Parse(tt.line)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())

			var perr *ParseError
			assert.ErrorAs(t, err, &perr)
		})
	}
}

func TestRegistry_Parse_ValueErrorWrapsValidation(t *testing.T) {
	_, err := NewRegistry().Parse("addbuyer n/John p/12 e/john@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidValue))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, addBuyerUsage, perr.Usage)
}

func TestParseDeleteClient_CheckOrder(t *testing.T) {
	reg := NewRegistry()
	format := fmt.Sprintf(MessageInvalidFormat, deleteBuyerUsage)

	tests := []struct {
		line string
		want string
	}{
		{"deletebuyer p/91234567 p/98765432", MessageDuplicateFields + "p/"},
		{"deletebuyer p/91234567 n/John", format},
		{"deletebuyer p/91234567 x/y", format},
		{"deletebuyer", format},
		{"deletebuyer /", format},
		{"deletebuyer junk p/91234567", format},
		{"deletebuyer p/12", model.PhoneConstraints},
		{"deletebuyer p/9123 4567", model.PhoneConstraints},
	}

	for _, tt := range tests {
		_, err := reg.Parse(tt.line)
		require.Error(t, err, tt.line)
		assert.Equal(t, tt.want, err.Error(), tt.line)
	}
}
