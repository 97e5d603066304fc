// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands parses and executes propdesk command lines.
package commands

import (
	"github.com/jeranaias/propdesk/internal/model"
)

const (
	addMeetingUsage = "addmeeting: Schedules a meeting between a buyer and a seller about a property.\n" +
		"Parameters: mt/TITLE md/DATE b/BUYER s/SELLER t/TYPE pc/POSTAL_CODE\n" +
		"Example: addmeeting mt/Viewing md/2024-05-01 b/John s/Mary t/HDB pc/123456"

	deleteMeetingUsage = "deletemeeting: Deletes the meeting with the given title and date.\n" +
		"Parameters: mt/TITLE md/DATE\n" +
		"Example: deletemeeting mt/Viewing md/2024-05-01"
)

// =============================================================================
// ADD MEETING
// =============================================================================

// AddMeetingCommand schedules a meeting. The buyer, seller and property must
// all be visible in the current lists.
type AddMeetingCommand struct {
	Meeting model.Meeting
}

func (AddMeetingCommand) Word() string { return "addmeeting" }

func (c AddMeetingCommand) Execute(m *model.Model) (Result, error) {
	mt := c.Meeting
	if m.HasMeeting(mt) {
		return Result{}, &CommandError{Message: MessageDuplicateMeeting, Err: model.ErrDuplicate}
	}

	clients := m.FilteredClients()
	if _, ok := findClientByName(clients, model.Buyer, mt.Buyer); !ok {
		return Result{}, &CommandError{Message: MessageBuyerNotFound, Err: model.ErrNotFound}
	}
	if _, ok := findClientByName(clients, model.Seller, mt.Seller); !ok {
		return Result{}, &CommandError{Message: MessageSellerNotFound, Err: model.ErrNotFound}
	}
	if !hasProperty(m.FilteredProperties(), mt.Type, mt.PostalCode) {
		return Result{}, &CommandError{Message: MessagePropertyNotFound, Err: model.ErrNotFound}
	}

	if err := m.AddMeeting(mt); err != nil {
		return Result{}, &CommandError{Message: MessageDuplicateMeeting, Err: err}
	}
	return feedback("New meeting added: " + mt.String()), nil
}

// findClientByName returns the first client of kind whose name contains name,
// ignoring case.
func findClientByName(clients []model.Client, kind model.ClientKind, name model.Name) (model.Client, bool) {
	for _, c := range clients {
		if c.Kind == kind && c.Name.ContainsFold(name.String()) {
			return c, true
		}
	}
	return model.Client{}, false
}

func hasProperty(properties []model.Property, t model.PropertyType, pc model.PostalCode) bool {
	for _, p := range properties {
		if p.Type == t && p.PostalCode == pc {
			return true
		}
	}
	return false
}

func parseAddMeeting(args string) (Command, error) {
	all := []Prefix{PrefixTitle, PrefixDate, PrefixBuyer, PrefixSeller, PrefixType, PrefixPostalCode}
	am := Tokenize(args, all...)
	if !am.HasAll(all...) || am.Preamble() != "" {
		return nil, formatError(addMeetingUsage)
	}
	if err := am.VerifyNoDuplicatePrefixesFor(all...); err != nil {
		return nil, err
	}

	var mt model.Meeting
	var err error
	if mt.Title, err = model.NewMeetingTitle(valueOf(am, PrefixTitle)); err != nil {
		return nil, valueError(addMeetingUsage, err)
	}
	if mt.Date, err = model.NewMeetingDate(valueOf(am, PrefixDate)); err != nil {
		return nil, valueError(addMeetingUsage, err)
	}
	if mt.Buyer, err = model.NewName(valueOf(am, PrefixBuyer)); err != nil {
		return nil, valueError(addMeetingUsage, err)
	}
	if mt.Seller, err = model.NewName(valueOf(am, PrefixSeller)); err != nil {
		return nil, valueError(addMeetingUsage, err)
	}
	if mt.Type, err = model.ParsePropertyType(valueOf(am, PrefixType)); err != nil {
		return nil, valueError(addMeetingUsage, err)
	}
	if mt.PostalCode, err = model.NewPostalCode(valueOf(am, PrefixPostalCode)); err != nil {
		return nil, valueError(addMeetingUsage, err)
	}
	return AddMeetingCommand{Meeting: mt}, nil
}

// =============================================================================
// DELETE MEETING
// =============================================================================

// DeleteMeetingCommand deletes the meeting with Title on Date.
type DeleteMeetingCommand struct {
	Title model.MeetingTitle
	Date  model.MeetingDate
}

func (DeleteMeetingCommand) Word() string { return "deletemeeting" }

func (c DeleteMeetingCommand) Execute(m *model.Model) (Result, error) {
	for _, mt := range m.FilteredMeetings() {
		if mt.Title != c.Title || mt.Date != c.Date {
			continue
		}
		if err := m.DeleteMeeting(mt); err != nil {
			return Result{}, &CommandError{Message: MessageMeetingNotFound, Err: err}
		}
		return feedback("Deleted Meeting: " + mt.String()), nil
	}
	return Result{}, &CommandError{Message: MessageMeetingNotFound, Err: model.ErrNotFound}
}

func parseDeleteMeeting(args string) (Command, error) {
	am := Tokenize(args, PrefixTitle, PrefixDate)
	if !am.HasAll(PrefixTitle, PrefixDate) || am.Preamble() != "" {
		return nil, formatError(deleteMeetingUsage)
	}
	if err := am.VerifyNoDuplicatePrefixesFor(PrefixTitle, PrefixDate); err != nil {
		return nil, err
	}

	title, err := model.NewMeetingTitle(valueOf(am, PrefixTitle))
	if err != nil {
		return nil, valueError(deleteMeetingUsage, err)
	}
	date, err := model.NewMeetingDate(valueOf(am, PrefixDate))
	if err != nil {
		return nil, valueError(deleteMeetingUsage, err)
	}
	return DeleteMeetingCommand{Title: title, Date: date}, nil
}
