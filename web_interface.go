package main

// indexHTML is the whole front-end: a drop zone, a clipboard paste target,
// and a recent-uploads list fed by /files. Served as-is, no templating.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Drop Zone - File Upload</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        * { box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background: #1a1a2e;
            color: #eee;
            min-height: 100vh;
        }
        h1 { color: #00d4ff; margin-bottom: 10px; }
        .subtitle { color: #888; margin-bottom: 30px; }
        .drop-zone {
            border: 3px dashed #444;
            border-radius: 12px;
            padding: 60px 20px;
            text-align: center;
            cursor: pointer;
            transition: all 0.3s;
            background: #16213e;
        }
        .drop-zone:hover, .drop-zone.drag-over {
            border-color: #00d4ff;
            background: #1a2744;
        }
        .drop-zone.drag-over { transform: scale(1.02); }
        .upload-icon { font-size: 48px; margin-bottom: 15px; }
        .upload-text { font-size: 18px; color: #aaa; }
        .upload-hint { font-size: 14px; color: #666; margin-top: 10px; }
        input[type="file"] { display: none; }
        .file-list { margin-top: 30px; border-radius: 8px; overflow: hidden; }
        .file-item {
            display: flex;
            align-items: center;
            padding: 12px 15px;
            background: #16213e;
            border-bottom: 1px solid #2a2a4a;
        }
        .file-item:last-child { border-bottom: none; }
        .file-item.success { border-left: 4px solid #00ff88; }
        .file-item.error { border-left: 4px solid #ff4757; }
        .file-item.uploading { border-left: 4px solid #ffa502; }
        .file-name { flex: 1; font-family: monospace; word-break: break-all; }
        .file-path { color: #00d4ff; font-size: 12px; margin-top: 4px; }
        .file-path a { color: #00d4ff; text-decoration: none; }
        .file-status { font-size: 12px; padding: 4px 8px; border-radius: 4px; }
        .status-success { background: #00ff8822; color: #00ff88; }
        .status-error { background: #ff475722; color: #ff4757; }
        .status-uploading { background: #ffa50222; color: #ffa502; }
        .paste-area {
            margin-top: 20px;
            padding: 15px;
            background: #16213e;
            border-radius: 8px;
            border: 1px solid #333;
        }
        .paste-area:focus { outline: none; border-color: #00d4ff; }
        .recent-files { margin-top: 30px; }
        .recent-files h3 { color: #888; font-size: 14px; margin-bottom: 10px; }
        code {
            background: #0d1b2a;
            padding: 2px 6px;
            border-radius: 4px;
            font-size: 13px;
        }
    </style>
</head>
<body>
    <h1>Drop Zone</h1>
    <p class="subtitle">Drop files here or paste images from clipboard</p>

    <div class="drop-zone" id="dropZone">
        <div class="upload-icon">&#128193;</div>
        <div class="upload-text">Drop files here or click to browse</div>
        <div class="upload-hint">Supports images, text files, and more</div>
        <input type="file" id="fileInput" multiple>
    </div>

    <div class="paste-area" contenteditable="true" id="pasteArea">
        Click here and paste (Ctrl+V / Cmd+V) to upload from clipboard...
    </div>

    <div class="file-list" id="fileList"></div>

    <div class="recent-files">
        <h3>Recent uploads</h3>
        <div id="recentList">Loading...</div>
    </div>

    <script>
        const dropZone = document.getElementById('dropZone');
        const fileInput = document.getElementById('fileInput');
        const fileList = document.getElementById('fileList');
        const pasteArea = document.getElementById('pasteArea');

        ['dragenter', 'dragover'].forEach(e => {
            dropZone.addEventListener(e, (ev) => {
                ev.preventDefault();
                dropZone.classList.add('drag-over');
            });
        });

        ['dragleave', 'drop'].forEach(e => {
            dropZone.addEventListener(e, (ev) => {
                ev.preventDefault();
                dropZone.classList.remove('drag-over');
            });
        });

        dropZone.addEventListener('drop', (e) => {
            handleFiles(e.dataTransfer.files);
        });

        dropZone.addEventListener('click', () => fileInput.click());
        fileInput.addEventListener('change', () => handleFiles(fileInput.files));

        pasteArea.addEventListener('paste', (e) => {
            e.preventDefault();
            for (let item of e.clipboardData.items) {
                if (item.type.startsWith('image/')) {
                    const blob = item.getAsFile();
                    const ext = item.type.split('/')[1] || 'png';
                    const file = new File([blob], 'clipboard_' + Date.now() + '.' + ext, { type: item.type });
                    handleFiles([file]);
                }
            }
            pasteArea.textContent = 'Click here and paste (Ctrl+V / Cmd+V) to upload from clipboard...';
        });

        function handleFiles(files) {
            for (let file of files) {
                uploadFile(file);
            }
        }

        function uploadFile(file) {
            const item = document.createElement('div');
            item.className = 'file-item uploading';
            item.innerHTML = '<div class="file-name">' + file.name +
                '<div class="file-path">Uploading...</div></div>' +
                '<span class="file-status status-uploading">Uploading</span>';
            fileList.prepend(item);

            const formData = new FormData();
            formData.append('file', file);

            fetch('/upload', { method: 'POST', body: formData })
                .then(r => r.json())
                .then(data => {
                    if (!data.success) {
                        throw new Error(data.error);
                    }
                    item.className = 'file-item success';
                    item.innerHTML = '<div class="file-name">' + file.name +
                        '<div class="file-path">' + data.path + '</div></div>' +
                        '<span class="file-status status-success">Uploaded</span>';
                    loadRecentFiles();
                })
                .catch(err => {
                    item.className = 'file-item error';
                    item.innerHTML = '<div class="file-name">' + file.name +
                        '<div class="file-path">' + err.message + '</div></div>' +
                        '<span class="file-status status-error">Failed</span>';
                });
        }

        function loadRecentFiles() {
            fetch('/files')
                .then(r => r.json())
                .then(files => {
                    const list = document.getElementById('recentList');
                    if (files.length === 0) {
                        list.innerHTML = '<div style="color:#666">No files yet</div>';
                        return;
                    }
                    list.innerHTML = files.slice(0, 10).map(f =>
                        '<div class="file-item"><div class="file-name">' +
                        '<code><a href="/download/' + encodeURIComponent(f.name) + '">' + f.name + '</a></code>' +
                        '<div class="file-path">' + f.size + ' - ' + f.time + '</div></div></div>'
                    ).join('');
                });
        }

        loadRecentFiles();
    </script>
</body>
</html>
`
