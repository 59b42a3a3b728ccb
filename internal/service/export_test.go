package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

func TestExportCSVIsStaffOnly(t *testing.T) {
	f := newTicketFixture(t)
	var buf bytes.Buffer

	err := f.service.ExportCSV(context.Background(), customerUser, TicketListInput{}, &buf)

	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
	assert.Zero(t, buf.Len())
}

func TestExportCSVWritesBOMHeaderAndRows(t *testing.T) {
	f := newTicketFixture(t)
	f.createTicket(t, customerUser, TicketCreateInput{Subject: "imprimante en panne, étage 3"})
	f.createTicket(t, otherUser, TicketCreateInput{Subject: "vpn drops"})

	var buf bytes.Buffer
	require.NoError(t, f.service.ExportCSV(context.Background(), employeeUser, TicketListInput{}, &buf))

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))

	reader := csv.NewReader(bytes.NewReader(raw[3:]))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "number", records[0][0])
	assert.Equal(t, "subject", records[0][1])

	subjects := []string{records[1][1], records[2][1]}
	assert.Contains(t, subjects, "imprimante en panne, étage 3")
	assert.Contains(t, subjects, "vpn drops")
	for _, record := range records[1:] {
		assert.True(t, strings.HasPrefix(record[0], "TKT-"))
	}
}

func TestExportCSVEmptySelectionStillHasHeader(t *testing.T) {
	f := newTicketFixture(t)

	var buf bytes.Buffer
	require.NoError(t, f.service.ExportCSV(context.Background(), employeeUser, TicketListInput{}, &buf))

	reader := csv.NewReader(bytes.NewReader(buf.Bytes()[3:]))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}
