/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/xiaomi388/result-management/cmd"

func main() {
	cmd.Execute()
}
