package main

import (
	"fmt"
	"log"
	"net"
	"os"

	"github.com/jackpal/gateway"
	"github.com/mdp/qrterminal/v3"
)

// localIP returns the IPv4 address on the same subnet as the default
// gateway, i.e. the address other devices on the LAN can reach.
func localIP() (string, error) {
	gwIP, err := gateway.DiscoverGateway()
	if err != nil {
		return "", fmt.Errorf("discover gateway: %w", err)
	}

	interfaces, err := net.Interfaces()
	if err != nil {
		return "", fmt.Errorf("list network interfaces: %w", err)
	}

	for _, iface := range interfaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ipv4 := ipnet.IP.To4()
			if ipv4 == nil || !ipv4.IsGlobalUnicast() {
				continue
			}
			if ipnet.Contains(gwIP) {
				return ipv4.String(), nil
			}
		}
	}

	return "", fmt.Errorf("no local IPv4 address on the gateway subnet")
}

// printAccessQR renders the LAN upload URL as a terminal QR code so a phone
// can open the page by scanning. LAN discovery failing is not fatal, the
// server still works via localhost.
func printAccessQR(port string) {
	ip, err := localIP()
	if err != nil {
		log.Printf("LAN address unavailable, skipping QR code: %v", err)
		return
	}

	url := "http://" + ip + ":" + port + "/"
	log.Printf("Scan to upload from another device: %s", url)
	qrterminal.GenerateWithConfig(url, qrterminal.Config{
		Level:          qrterminal.M,
		Writer:         os.Stdout,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
		QuietZone:      1,
	})
}
