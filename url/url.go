// Package url loads document and style-sheet text for the parsers. It
// speaks plain HTTP over a raw connection plus the file scheme for local
// sources.
package url

import (
	"bufio"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
)

type URL struct {
	scheme string
	host   string
	path   string
	port   int
}

func NewURL(url string) (*URL, error) {
	u := &URL{}
	splitURL := strings.Split(url, "://")
	if len(splitURL) < 2 {
		return nil, fmt.Errorf("no URL scheme: %s", url)
	}
	u.scheme, url = splitURL[0], splitURL[1]
	switch u.scheme {
	case "http":
		u.port = 80
	case "https":
		u.port = 443
	case "file":
		u.path = url
		return u, nil
	default:
		return nil, fmt.Errorf("unsupported URL scheme: %s", u.scheme)
	}
	if !strings.Contains(url, "/") {
		url += "/"
	}
	splitPath := strings.SplitN(url, "/", 2)
	u.host, url = splitPath[0], splitPath[1]
	if strings.Contains(u.host, ":") {
		hostParts := strings.Split(u.host, ":")
		u.host = hostParts[0]
		port, err := strconv.Atoi(hostParts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid port in URL: %s", hostParts[1])
		}
		u.port = port
	}
	u.path = "/" + url
	return u, nil
}

// Request fetches the resource and returns its body as text.
func (u *URL) Request() (string, error) {
	if u.scheme == "file" {
		content, err := os.ReadFile(u.path)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %s", err.Error())
		}
		return string(content), nil
	}

	conn, err := net.Dial("tcp", u.host+":"+strconv.Itoa(u.port))
	if err != nil {
		return "", fmt.Errorf("failed to connect to host: %s", err.Error())
	}
	defer conn.Close()
	if u.scheme == "https" {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true, // For simplicity, skip TLS verification
		}
		conn = tls.Client(conn, tlsConfig)
		if err := conn.(*tls.Conn).Handshake(); err != nil {
			return "", fmt.Errorf("failed to perform TLS handshake: %s", err.Error())
		}
	}

	request := "GET " + u.path + " HTTP/1.1\r\n"
	request += "Host: " + u.host + "\r\n"
	request += "Connection: close\r\n"
	request += "User-Agent: twig\r\n"
	request += "\r\n"

	_, err = conn.Write([]byte(request))
	if err != nil {
		return "", fmt.Errorf("failed to send request: %s", err.Error())
	}

	reader := bufio.NewReader(conn)
	_, err = reader.ReadString('\n') // status line
	if err != nil {
		return "", fmt.Errorf("failed to read response: %s", err.Error())
	}

	responseHeaders := make(map[string]string)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read response: %s", err.Error())
		}
		if line == "\r\n" {
			break
		}
		split := strings.SplitN(line, ":", 2)
		header, value := split[0], split[1]
		responseHeaders[strings.ToLower(header)] = strings.TrimSpace(value)
	}

	if _, ok := responseHeaders["transfer-encoding"]; ok {
		return "", fmt.Errorf("transfer-Encoding header found in response, unsupported")
	}
	if _, ok := responseHeaders["content-encoding"]; ok {
		return "", fmt.Errorf("content-Encoding header found in response, unsupported")
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %s", err.Error())
	}
	return string(content), nil
}

func (u *URL) String() string {
	if u.scheme == "file" {
		return "file://" + u.path
	}
	port_part := ":" + strconv.Itoa(u.port)
	if u.scheme == "https" && u.port == 443 {
		port_part = ""
	}
	if u.scheme == "http" && u.port == 80 {
		port_part = ""
	}
	return u.scheme + "://" + u.host + port_part + u.path
}
