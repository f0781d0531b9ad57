package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

type API struct {
	storage *Storage
}

func NewAPI(storage *Storage) *API {
	return &API{storage: storage}
}

func (a *API) RegisterRoutes(router *gin.Engine) {
	router.GET("/", a.indexPage)
	router.GET("/files", a.listFiles)
	router.POST("/upload", a.uploadFile)
	router.GET("/download/:name", a.downloadFile)

	router.NoRoute(func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
}

func (a *API) uploadFile(c *gin.Context) {
	if c.ContentType() != "multipart/form-data" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid content type"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No file provided"})
		return
	}
	defer file.Close()

	path, size, err := a.storage.Save(header.Filename, file)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidFilename) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	log.Printf("Saved: %s (%d bytes)", path, size)
	c.JSON(http.StatusOK, gin.H{"success": true, "path": path, "size": size})
}

func (a *API) listFiles(c *gin.Context) {
	files, err := a.storage.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, files)
}

func (a *API) downloadFile(c *gin.Context) {
	name := c.Param("name")

	path, err := a.storage.resolve(name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid filename"})
		return
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		c.Status(http.StatusNotFound)
		return
	}

	c.FileAttachment(path, name)
}

func (a *API) indexPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}
