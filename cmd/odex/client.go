package main

import (
	"encoding/json"
	"fmt"
)

func doGet(path string) error {
	client, err := getClient()
	if err != nil {
		return err
	}
	resp, err := client.R().Get(path)
	if err != nil {
		return err
	}
	return printResponse(resp.StatusCode(), resp.Body())
}

func doPost(path string, body interface{}) error {
	client, err := getClient()
	if err != nil {
		return err
	}
	req := client.R().SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Post(path)
	if err != nil {
		return err
	}
	return printResponse(resp.StatusCode(), resp.Body())
}

func printResponse(status int, body []byte) error {
	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		decoded = string(body)
	}
	if status >= 400 {
		return fmt.Errorf("daemon returned %d: %v", status, decoded)
	}
	printRespJSON(decoded)
	return nil
}
