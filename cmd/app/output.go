package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
)

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func printKV(rows [][2]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", row[0], row[1])
	}
	_ = w.Flush()
}

func printTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Println("no results")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

func int64ToString(v int64) string {
	return strconv.FormatInt(v, 10)
}

func printUsers(items []userResponse) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{int64ToString(item.ID), item.Name, item.Role})
	}
	printTable([]string{"ID", "NAME", "ROLE"}, rows)
}

func printEquipment(items []equipmentResponse) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{int64ToString(item.ID), item.Name, item.SerialNumber})
	}
	printTable([]string{"ID", "NAME", "SERIAL_NUMBER"}, rows)
}

func printOrders(items []orderSummaryResponse) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			int64ToString(item.ID),
			item.State,
			item.DateCreated,
			int64ToString(item.UserID),
			item.UserName,
			int64ToString(item.EquipmentID),
			item.EquipmentName,
		})
	}
	printTable([]string{"ID", "STATE", "DATE_CREATED", "USER_ID", "USER", "EQUIPMENT_ID", "EQUIPMENT"}, rows)
}

func printDetails(items []detailResponse) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{int64ToString(item.ID), int64ToString(item.OrderID), item.Date, item.Description})
	}
	printTable([]string{"ID", "ORDER_ID", "DATE", "DESCRIPTION"}, rows)
}
