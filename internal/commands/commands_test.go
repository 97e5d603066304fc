// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/propdesk/internal/model"
)

// =============================================================================
// HELPERS
// =============================================================================

type session struct {
	t   *testing.T
	reg *Registry
	m   *model.Model
}

func newSession(t *testing.T) *session {
	t.Helper()
	return &session{t: t, reg: NewRegistry(), m: model.New(nil, nil)}
}

// run parses and executes line; the line must parse.
func (s *session) run(line string) (Result, error) {
	s.t.Helper()
	cmd, err := s.reg.Parse(line)
	require.NoError(s.t, err, line)
	return cmd.Execute(s.m)
}

// ok runs line and requires it to succeed.
func (s *session) ok(line string) Result {
	s.t.Helper()
	res, err := s.run(line)
	require.NoError(s.t, err, line)
	return res
}

// fail runs line and requires a CommandError with message want.
func (s *session) fail(line, want string) {
	s.t.Helper()
	_, err := s.run(line)
	require.Error(s.t, err, line)

	var cerr *CommandError
	require.ErrorAs(s.t, err, &cerr)
	assert.Equal(s.t, want, cerr.Message, line)
}

func (s *session) seedMeetingParties() {
	s.ok("addbuyer n/John Tan p/91234567 e/john@example.com")
	s.ok("addseller n/Mary Lim p/98765432 e/mary@example.com")
	s.ok("addproperty pc/123456 u/11-11 t/HDB a/450000")
}

// =============================================================================
// CLIENTS
// =============================================================================

func TestAddClient(t *testing.T) {
	s := newSession(t)

	res := s.ok("addbuyer n/John Tan p/91234567 e/john@example.com")
	assert.Equal(t, "New buyer added: John Tan; Phone: 91234567; Email: john@example.com", res.Feedback)

	res = s.ok("addseller n/Mary Lim p/98765432 e/mary@example.com")
	assert.Equal(t, "New seller added: Mary Lim; Phone: 98765432; Email: mary@example.com", res.Feedback)

	s.fail("addbuyer n/Someone Else p/91234567 e/x@example.com", "This buyer already exists in the client book")
	s.fail("addseller n/Mary Lim p/98765432 e/mary@example.com", "This seller already exists in the client book")

	// A seller may share a buyer's phone number.
	s.ok("addseller n/John Tan p/91234567 e/john@example.com")
	assert.Len(t, s.m.Snapshot().Clients, 3)
	assert.Equal(t, model.ShowingClients, s.m.Display())
}

func TestAddClient_DuplicateIsErrDuplicate(t *testing.T) {
	s := newSession(t)
	s.ok("addbuyer n/John p/911 e/john@example.com")

	_, err := s.run("addbuyer n/John p/911 e/john@example.com")
	assert.True(t, errors.Is(err, model.ErrDuplicate))
}

func TestDeleteBuyer_SellerSharesPhone(t *testing.T) {
	s := newSession(t)
	s.ok("addbuyer n/John Tan p/91234567 e/john@example.com")
	s.ok("addseller n/John Tan p/91234567 e/john@example.com")

	res := s.ok("deletebuyer p/91234567")
	assert.Equal(t, "Deleted Buyer: John Tan; Phone: 91234567; Email: john@example.com", res.Feedback)

	clients := s.m.Snapshot().Clients
	require.Len(t, clients, 1)
	assert.True(t, clients[0].IsSeller())

	s.fail("deletebuyer p/91234567", MessageBuyerNotFound)
	s.ok("deleteseller p/91234567")
	s.fail("deleteseller p/91234567", MessageSellerNotFound)
}

func TestDeleteClient_OnlyVisibleClients(t *testing.T) {
	s := newSession(t)
	s.ok("addbuyer n/John Tan p/91234567 e/john@example.com")
	s.ok("filterclient n/Mary")

	s.fail("deletebuyer p/91234567", MessageBuyerNotFound)

	s.ok("list k/clients")
	s.ok("deletebuyer p/91234567")
}

// =============================================================================
// PROPERTIES
// =============================================================================

func TestAddAndDeleteProperty(t *testing.T) {
	s := newSession(t)

	res := s.ok("addproperty pc/123456 u/11-11 t/HDB a/500000")
	assert.Equal(t, "New property added: Postal Code: 123456; Unit: 11-11; Type: HDB; Ask: 500000", res.Feedback)
	assert.Equal(t, model.ShowingProperties, s.m.Display())

	s.fail("addproperty pc/123456 u/11-11 t/CONDO", MessageDuplicateProperty)

	res = s.ok("deleteproperty pc/123456 u/11-11")
	assert.Equal(t, "Deleted Property: Postal Code: 123456; Unit: 11-11; Type: HDB; Ask: 500000", res.Feedback)
	s.fail("deleteproperty pc/123456 u/11-11", MessagePropertyNotFound)
}

func TestFilterProperty(t *testing.T) {
	s := newSession(t)
	s.ok("addproperty pc/111111 u/1-1 t/HDB a/450000")
	s.ok("addproperty pc/222222 u/1-1 t/HDB a/600000")
	s.ok("addproperty pc/333333 u/1-1 t/CONDO a/400000")
	s.ok("addproperty pc/444444 u/1-1 t/HDB")

	res := s.ok("filterproperty t/HDB lte/500000")
	assert.Equal(t, "Listed 1 properties matching: type=HDB, lte=500000", res.Feedback)

	visible := s.m.FilteredProperties()
	require.Len(t, visible, 1)
	assert.Equal(t, "111111", visible[0].PostalCode.String())

	res = s.ok("filterproperty t/hdb")
	assert.Equal(t, "Listed 3 properties matching: type=HDB", res.Feedback)

	res = s.ok("filterproperty gte/400000 lte/450000")
	assert.Equal(t, "Listed 2 properties matching: lte=450000, gte=400000", res.Feedback)

	s.ok("list k/properties")
	assert.Len(t, s.m.FilteredProperties(), 4)
}

func TestFilterProperty_RequiresCriterion(t *testing.T) {
	_, err := NewRegistry().Parse("filterproperty")
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, filterPropertyUsage, perr.Usage)
}

// =============================================================================
// MEETINGS
// =============================================================================

func TestAddMeeting_Twice(t *testing.T) {
	s := newSession(t)
	s.seedMeetingParties()

	res := s.ok("addmeeting mt/Viewing md/2024-05-01 b/john s/MARY t/HDB pc/123456")
	assert.Equal(t,
		"New meeting added: Viewing on 2024-05-01; Buyer: john; Seller: MARY; Property: HDB 123456",
		res.Feedback)

	s.fail("addmeeting mt/Viewing md/2024-05-01 b/john s/mary t/HDB pc/123456", MessageDuplicateMeeting)
	assert.Len(t, s.m.Snapshot().Meetings, 1)

	// Same title on another day is a different meeting.
	s.ok("addmeeting mt/Viewing md/2024-05-02 b/john s/mary t/HDB pc/123456")
	assert.Len(t, s.m.Snapshot().Meetings, 2)
}

func TestAddMeeting_PartiesMustExist(t *testing.T) {
	s := newSession(t)
	s.seedMeetingParties()

	s.fail("addmeeting mt/A md/2024-05-01 b/Peter s/Mary t/HDB pc/123456", MessageBuyerNotFound)
	s.fail("addmeeting mt/A md/2024-05-01 b/John s/Peter t/HDB pc/123456", MessageSellerNotFound)
	s.fail("addmeeting mt/A md/2024-05-01 b/Mary s/Mary t/HDB pc/123456", MessageBuyerNotFound)
	s.fail("addmeeting mt/A md/2024-05-01 b/John s/Mary t/CONDO pc/123456", MessagePropertyNotFound)
	s.fail("addmeeting mt/A md/2024-05-01 b/John s/Mary t/HDB pc/654321", MessagePropertyNotFound)

	assert.Empty(t, s.m.Snapshot().Meetings)
}

func TestAddMeeting_DuplicateCheckedFirst(t *testing.T) {
	s := newSession(t)
	s.seedMeetingParties()
	s.ok("addmeeting mt/Viewing md/2024-05-01 b/John s/Mary t/HDB pc/123456")

	// Unknown buyer, but the duplicate is reported.
	s.fail("addmeeting mt/Viewing md/2024-05-01 b/Nobody s/Mary t/HDB pc/123456", MessageDuplicateMeeting)
}

func TestAddMeeting_HiddenBuyer(t *testing.T) {
	s := newSession(t)
	s.seedMeetingParties()
	s.ok("list k/sellers")

	s.fail("addmeeting mt/Viewing md/2024-05-01 b/John s/Mary t/HDB pc/123456", MessageBuyerNotFound)
}

func TestDeleteMeeting(t *testing.T) {
	s := newSession(t)
	s.seedMeetingParties()
	s.ok("addmeeting mt/Viewing md/2024-05-01 b/John s/Mary t/HDB pc/123456")

	s.fail("deletemeeting mt/Viewing md/2024-05-02", MessageMeetingNotFound)

	res := s.ok("deletemeeting mt/Viewing md/2024-05-01")
	assert.Equal(t, "Deleted Meeting: Viewing on 2024-05-01; Buyer: John; Seller: Mary; Property: HDB 123456", res.Feedback)
	assert.Empty(t, s.m.Snapshot().Meetings)
}

// =============================================================================
// LIST AND FILTER CLIENTS
// =============================================================================

func TestList(t *testing.T) {
	s := newSession(t)
	s.ok("addbuyer n/John p/911 e/john@example.com")
	s.ok("addseller n/Mary p/922 e/mary@example.com")
	s.ok("addseller n/Max p/933 e/max@example.com")

	tests := []struct {
		line    string
		message string
		count   int
	}{
		{"list k/buyers", "Listed all buyers", 1},
		{"list k/SELLERS", "Listed all sellers", 2},
		{"list k/Clients", "Listed all clients", 3},
	}

	for _, tt := range tests {
		res := s.ok(tt.line)
		assert.Equal(t, tt.message, res.Feedback)
		assert.Len(t, s.m.FilteredClients(), tt.count, tt.line)
		assert.Equal(t, model.ShowingClients, s.m.Display())
	}

	res := s.ok("list k/properties")
	assert.Equal(t, "Listed all properties", res.Feedback)
	assert.Equal(t, model.ShowingProperties, s.m.Display())
}

func TestFilterClient(t *testing.T) {
	s := newSession(t)
	s.ok("addbuyer n/John p/911 e/john@example.com")
	s.ok("addseller n/joanne p/922 e/jo@example.com")
	s.ok("addseller n/Mary Jo p/933 e/mary@example.com")
	s.ok("list k/properties")

	res := s.ok("filterclient n/JO")
	assert.Equal(t, "Listed all clients with name starting with: JO (2 found)", res.Feedback)
	assert.Equal(t, model.ShowingClients, s.m.Display())

	// Adding a client clears the filter.
	s.ok("addbuyer n/Zed p/944 e/zed@example.com")
	assert.Len(t, s.m.FilteredClients(), 4)
}

// =============================================================================
// GENERAL
// =============================================================================

func TestClear(t *testing.T) {
	s := newSession(t)
	s.seedMeetingParties()
	s.ok("addmeeting mt/Viewing md/2024-05-01 b/John s/Mary t/HDB pc/123456")

	res := s.ok("clear")
	assert.Equal(t, "All records have been cleared!", res.Feedback)

	snap := s.m.Snapshot()
	assert.Empty(t, snap.Clients)
	assert.Empty(t, snap.Properties)
	assert.Empty(t, snap.Meetings)
}

func TestHelpAndExit(t *testing.T) {
	s := newSession(t)

	res := s.ok("help")
	assert.True(t, res.ShowHelp)
	assert.False(t, res.Exit)
	assert.Equal(t, "Showing help.", res.Feedback)

	res = s.ok("exit")
	assert.True(t, res.Exit)
	assert.Equal(t, "Exiting propdesk as requested ...", res.Feedback)
}

func TestCommandError_LeavesModelUnchanged(t *testing.T) {
	s := newSession(t)
	s.seedMeetingParties()
	before := s.m.Snapshot()

	s.fail("deleteproperty pc/999999 u/1-1", MessagePropertyNotFound)
	s.fail("addmeeting mt/A md/2024-05-01 b/Nobody s/Mary t/HDB pc/123456", MessageBuyerNotFound)

	assert.Equal(t, before, s.m.Snapshot())
}
